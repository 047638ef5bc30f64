package metrics

import "github.com/prometheus/client_golang/prometheus"

// Web search Prometheus metrics.
var (
	WebSearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recollect",
			Name:      "websearch_requests_total",
			Help:      "Total web search requests per provider",
		},
		[]string{"provider", "status"}, // status: "success" / "error"
	)

	WebSearchFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recollect",
			Name:      "websearch_fallbacks_total",
			Help:      "Times the coordinator fell back past the primary provider",
		},
	)
)

var webSearchMetricsRegistered bool

// RegisterWebSearchMetrics registers web search metrics. Must be called once from main.
func RegisterWebSearchMetrics() {
	if webSearchMetricsRegistered {
		return
	}
	prometheus.MustRegister(WebSearchRequestsTotal)
	prometheus.MustRegister(WebSearchFallbacksTotal)
	webSearchMetricsRegistered = true
}
