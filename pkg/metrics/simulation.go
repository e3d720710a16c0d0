package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the comparison HTTP handlers
	CompareLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_compare_latency_seconds",
		Help:    "Latency of the policy comparison handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of comparison requests served
	CompareRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulation_compare_requests_total",
		Help: "Total number of comparison requests",
	})
)

func Init() {
	prometheus.MustRegister(
		CompareLatency,
		CompareRequests,
	)
}
