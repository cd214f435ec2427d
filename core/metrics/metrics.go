package metrics

import (
	"time"

	"catalog-manager/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catalog"

// Recorder holds the reconciliation collectors. A nil Recorder records nothing.
type Recorder struct {
	runs     *prometheus.CounterVec
	records  prometheus.Counter
	rows     *prometheus.CounterVec
	counters *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_runs_total",
			Help:      "Reconciliation runs by result.",
		}, []string{"result"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_records_total",
			Help:      "Primary records processed.",
		}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_rows_total",
			Help:      "Export rows written per lane.",
		}, []string{"lane"}),
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_conditions_total",
			Help:      "Classification conditions hit during reconciliation.",
		}, []string{"condition"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(r.runs, r.records, r.rows, r.counters, r.duration)
	return r
}

// ObserveRun records a completed run.
func (r *Recorder) ObserveRun(s reconcile.Summary, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues("ok").Inc()
	r.records.Add(float64(s.Records))
	for lane, n := range s.Lanes {
		r.rows.WithLabelValues(string(lane)).Add(float64(n))
	}
	r.counters.WithLabelValues(string(reconcile.CounterSkipped)).Add(float64(s.Skipped))
	r.counters.WithLabelValues(string(reconcile.CounterNoMarkup)).Add(float64(s.NoMarkup))
	r.counters.WithLabelValues(string(reconcile.CounterUpdated)).Add(float64(s.Updated))
	r.counters.WithLabelValues(string(reconcile.CounterNoAttributeData)).Add(float64(s.NoAttributeData))
	r.duration.Observe(elapsed.Seconds())
}

// RunFailed records an aborted run.
func (r *Recorder) RunFailed() {
	if r == nil {
		return
	}
	r.runs.WithLabelValues("failed").Inc()
}
