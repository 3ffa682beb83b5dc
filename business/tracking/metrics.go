package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsQueuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_events_queued_total",
			Help: "Count of events accepted into the tracking queue by event type.",
		},
		[]string{"event_type"},
	)

	FlushesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_flushes_total",
			Help: "Count of batch flushes by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(EventsQueuedTotal, FlushesTotal)
}
