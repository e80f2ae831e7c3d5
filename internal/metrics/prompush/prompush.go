// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// It adapts the generic metrics.Backend interface to Prometheus by using
// client_golang CounterVec and SummaryVec collectors and pushing them to a
// Pushgateway instance instead of exposing a scrape endpoint. The store
// client is short-lived batch tooling territory, which is exactly what the
// Pushgateway is for. All Prometheus-specific dependencies stay in this
// package.
package prompush

import (
	"fmt"

	"relstore/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	stmtCounter  *prometheus.CounterVec // relstore_statements_total
	stmtDuration *prometheus.SummaryVec // relstore_statement_duration_seconds
	rowCounter   *prometheus.CounterVec // relstore_rows_total
}

// NewBackend constructs a Prometheus Pushgateway backend. jobName is the
// Pushgateway "job" grouping key; gatewayURL is the base URL of the
// Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "relstore"
	}

	reg := prometheus.NewRegistry()

	stmtCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metrics.StatementsTotal,
			Help: "Total statements executed by the store client, partitioned by operation and status.",
		},
		[]string{"op", "status"},
	)
	stmtDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       metrics.StatementSeconds,
			Help:       "Duration of store client operations in seconds, partitioned by operation and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"op", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metrics.RowsTotal,
			Help: "Rows flowing through store client operations, partitioned by operation.",
		},
		[]string{"op"},
	)

	for _, c := range []prometheus.Collector{stmtCounter, stmtDuration, rowCounter} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("prompush: register collector: %w", err)
		}
	}

	return &Backend{
		gatewayURL:   gatewayURL,
		jobName:      jobName,
		reg:          reg,
		stmtCounter:  stmtCounter,
		stmtDuration: stmtDuration,
		rowCounter:   rowCounter,
	}, nil
}

// IncCounter implements metrics.Backend.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case metrics.StatementsTotal:
		b.stmtCounter.WithLabelValues(labels["op"], labels["status"]).Add(delta)
	case metrics.RowsTotal:
		b.rowCounter.WithLabelValues(labels["op"]).Add(delta)
	default:
		// unknown metric name: ignore
	}
}

// ObserveHistogram implements metrics.Backend.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != metrics.StatementSeconds {
		return
	}
	b.stmtDuration.WithLabelValues(labels["op"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
