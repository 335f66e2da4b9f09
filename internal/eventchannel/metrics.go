package eventchannel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_channel_reconnects_total",
			Help: "Total number of event channel reconnect attempts after a drop",
		},
	)

	EventsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_channel_events_received_total",
			Help: "Total number of events received per event type",
		},
		[]string{"type"},
	)
)
