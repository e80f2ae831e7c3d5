// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the store client.
//
// It exposes a narrow interface (Backend) focused on counters and timing
// data, and a global, pluggable backend that defaults to a no-op
// implementation, so metric calls are always safe even when no real backend
// is configured. Concrete metric systems (Prometheus Pushgateway, Datadog)
// live in subpackages; the rest of the codebase depends only on this
// interface.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends. It is intentionally
// generic so Prometheus, Datadog, etc. can be plugged in.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics if the backend needs it (e.g.
	// Pushgateway).
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// Metric names recorded by the store client.
const (
	StatementsTotal  = "relstore_statements_total"
	StatementSeconds = "relstore_statement_duration_seconds"
	RowsTotal        = "relstore_rows_total"
)

// RecordStatement measures one client operation: a counter partitioned by
// operation and status, plus a duration observation.
func RecordStatement(op string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	lbls := Labels{"op": op, "status": status}
	backend.IncCounter(StatementsTotal, 1, lbls)
	backend.ObserveHistogram(StatementSeconds, d.Seconds(), lbls)
}

// RecordRows counts rows flowing through an operation (inserted, queried,
// deleted).
func RecordRows(op string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(RowsTotal, float64(delta), Labels{"op": op})
}
