package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulation_comparisons_total",
			Help: "Count of policy comparisons by mode and scenario.",
		},
		[]string{"mode", "scenario"},
	)

	TokensIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulation_tokens_issued_total",
			Help: "Tokens issued across simulation runs, by policy.",
		},
		[]string{"policy"},
	)
)

func init() {
	prometheus.MustRegister(ComparisonsTotal, TokensIssuedTotal)
}
