// Package metrics exposes reconciliation counters to Prometheus.
//
// A Recorder is registered once at startup and fed the Summary of every run. The HTTP
// server publishes the default registry at /metrics.
package metrics
