// Package metrics holds the Prometheus collectors shared by the server and the CLI.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mealwiser"

var (
	// RPCRequests counts record-service calls by procedure and result code.
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of record service RPCs",
		},
		[]string{"procedure", "code"},
	)

	// RPCDuration observes record-service call latency.
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Record service RPC latency",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"procedure"},
	)

	// LedgerOperations counts engine operations by name and result.
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Total number of ledger engine operations",
		},
		[]string{"operation", "result"},
	)

	// StoreMode is 0 while the remote store is in use and 1 after falling back to
	// local storage.
	StoreMode = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_mode",
			Help:      "Record store routing mode (0 remote, 1 local fallback)",
		},
	)
)

// ObserveOperation records the outcome of one ledger operation.
func ObserveOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	LedgerOperations.WithLabelValues(operation, result).Inc()
}
