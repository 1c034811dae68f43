// Package metrics provides the Prometheus metrics of the catalog layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendQueryDuration measures query execution time.
	// Labels: backend (mongo, cassandra), operation, status (ok, error)
	BackendQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_backend_query_duration_seconds",
			Help:    "Catalog backend query duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"backend", "operation", "status"},
	)

	// MalformedTokensTotal counts page tokens that could not be decoded and restarted paging.
	MalformedTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_malformed_page_tokens_total",
			Help: "Total number of malformed page tokens",
		},
		[]string{"backend"},
	)

	// CategoryLookupsTotal counts category resolutions.
	// Labels: result (hit, miss, error)
	CategoryLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_category_lookups_total",
			Help: "Total number of category lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveQuery records one backend query that started at start.
func ObserveQuery(backend, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	BackendQueryDuration.WithLabelValues(backend, operation, status).Observe(time.Since(start).Seconds())
}

// RecordMalformedToken counts a page token that degraded to the first page.
func RecordMalformedToken(backend string) {
	MalformedTokensTotal.WithLabelValues(backend).Inc()
}

// RecordCategoryLookup counts a category lookup outcome.
func RecordCategoryLookup(result string) {
	CategoryLookupsTotal.WithLabelValues(result).Inc()
}
