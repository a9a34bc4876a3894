package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "groph_store"

// Коллекторы регистрируются в дефолтном реестре prometheus и отдаются
// хендлером promhttp на /metrics.
var (
	OrdersCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "orders_committed_total",
		Help:      "Successfully committed purchase transactions.",
	})

	PaymentsCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "payments_committed_total",
		Help:      "Successfully committed payment transactions.",
	})

	CommitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "commit_failures_total",
		Help:      "Storage faults during an atomic commit, by operation.",
	}, []string{"operation"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
