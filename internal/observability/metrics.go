package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	framesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "frames_received_total",
			Help:      "Completed inbound frames handed to the dispatcher.",
		},
	)
	framesTruncated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "frames_truncated_total",
			Help:      "Inbound frames that lost bytes to the read buffer capacity.",
		},
	)
	framesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "frames_dropped_total",
			Help:      "Completed frames discarded because field parsing failed.",
		},
	)
	probesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "probes_total",
			Help:      "Idle keep-alive probes written to the link.",
		},
	)
	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "messages_total",
			Help:      "Outbound messages completed, by service.",
		},
		[]string{"service"},
	)
	pongsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shieldctl",
			Subsystem: "serial",
			Name:      "pongs_total",
			Help:      "Ping replies sent to the companion device.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesReceived, framesTruncated, framesDropped, probesSent, messagesSent, pongsSent)
	})
}

func RecordFrameReceived() {
	RegisterMetrics()
	framesReceived.Inc()
}

func RecordFrameTruncated() {
	RegisterMetrics()
	framesTruncated.Inc()
}

func RecordFrameDropped() {
	RegisterMetrics()
	framesDropped.Inc()
}

func RecordProbe() {
	RegisterMetrics()
	probesSent.Inc()
}

func RecordMessageSent(service string) {
	RegisterMetrics()
	messagesSent.WithLabelValues(service).Inc()
}

func RecordPong() {
	RegisterMetrics()
	pongsSent.Inc()
}
