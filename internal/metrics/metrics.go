package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ComparisonsTotal counts calculate requests by terminal outcome.
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitratio_comparisons_total",
			Help: "Total calculate requests by outcome",
		},
		[]string{"outcome"},
	)

	// OpenAIRequestSeconds observes the latency of one estimate call.
	OpenAIRequestSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitratio_openai_request_seconds",
			Help:    "Latency of OpenAI estimate calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(ComparisonsTotal, OpenAIRequestSeconds)
}
