package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation responses by context and algorithm.",
		},
		[]string{"context", "algorithm"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal)
}
