// Package metrics exposes Prometheus instrumentation for the ledger
// operations. Counters are registered on the default registry and served by
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts transfer attempts by outcome.
	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sandbox_transfers_total",
		Help: "Transfer operations processed, labelled by outcome.",
	}, []string{"outcome"})

	// TopUpsTotal counts top-up attempts by outcome.
	TopUpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sandbox_topups_total",
		Help: "Top-up operations processed, labelled by outcome.",
	}, []string{"outcome"})

	// ProductRequestsTotal counts product request attempts by outcome.
	ProductRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sandbox_product_requests_total",
		Help: "Product request operations processed, labelled by outcome.",
	}, []string{"outcome"})

	// HTTPRequestDuration observes request latency per method and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sandbox_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// Outcome maps an operation error to a counter label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
