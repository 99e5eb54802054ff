package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Ledger
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Recorded ledger transactions",
		},
		[]string{"type"}, // credit|payment
	)
	TransactionsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_transactions_deleted_total",
			Help: "Deleted ledger transactions",
		},
	)
	ClientOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_client_ops_total",
			Help: "Client create/update/delete operations",
		},
		[]string{"op"},
	)
	StoreErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_store_errors_total",
			Help: "Store failures surfaced to callers",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
	EventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_events_dropped_total",
			Help: "Change events not published",
		},
	)

	once sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			TransactionsTotal,
			TransactionsDeleted,
			ClientOpsTotal,
			StoreErrors,
			WorkerQueueDepth,
			EventsDropped,
		)
	})
}
