package metrics

import (
	"testing"
	"time"

	"catalog-manager/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveRun(reconcile.Summary{
		Records:         4,
		Skipped:         2,
		NoMarkup:        1,
		Updated:         1,
		NoAttributeData: 3,
		Lanes: map[reconcile.Lane]int{
			reconcile.LaneUpdated:  2,
			reconcile.LaneSkipped:  1,
			reconcile.LaneNoMarkup: 1,
		},
	}, 250*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("ok")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.records))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.rows.WithLabelValues("updated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.counters.WithLabelValues("skipped")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.counters.WithLabelValues("no_attribute_data")))

	n, err := testutil.GatherAndCount(reg, "catalog_reconcile_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_RunFailed(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RunFailed()
	r.RunFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues("failed")))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.ObserveRun(reconcile.Summary{}, time.Second)
		r.RunFailed()
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
