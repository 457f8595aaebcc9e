package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitlog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RepositoryErrors counts repository operation failures by error code.
	RepositoryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlog_repository_errors_total",
		Help: "Total number of repository operation failures by error code",
	}, []string{"operation", "table", "code"})
)

// ObserveQuery records the latency of a repository operation. Intended to be
// deferred at the top of each repository method.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// RecordRepositoryError increments the failure counter for an operation.
func RecordRepositoryError(operation, table, code string) {
	RepositoryErrors.WithLabelValues(operation, table, code).Inc()
}
