package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Total number of tracking batches accepted by the collector
	TrackingBatchesAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracking_batches_accepted_total",
		Help: "Total number of accepted tracking batches",
	})

	// Accepted tracking events broken down by event type
	TrackingEventsAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracking_events_accepted_total",
		Help: "Total number of accepted tracking events by event type",
	}, []string{"event_type"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		TrackingBatchesAccepted,
		TrackingEventsAccepted,
	)
}
