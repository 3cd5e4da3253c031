// Package metrics exposes prometheus instrumentation. The compensation
// counters exist because partial failures leave the ledger inconsistent
// until reconciled; they are the operational signal for that window.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Ledger operations by type and outcome",
		},
		[]string{"operation", "status"},
	)

	CompensationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_compensations_total",
			Help: "Compensating actions executed after a partial failure",
		},
		[]string{"saga", "step"},
	)

	CompensationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_compensation_failures_total",
			Help: "Compensating actions that themselves failed, leaving an inconsistency",
		},
		[]string{"saga", "step"},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(CompensationsTotal)
	prometheus.MustRegister(CompensationFailures)
}

// RecordOperation increments the operation counter.
func RecordOperation(operation, status string) {
	OperationsTotal.WithLabelValues(operation, status).Inc()
}
