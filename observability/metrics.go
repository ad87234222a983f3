// Package observability exposes the process metrics on the default
// Prometheus registry. Everything here is telemetry only: no domain
// decision may depend on these values.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chathub_sessions_active",
		Help: "Current number of connected sessions.",
	})

	SessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chathub_sessions_total",
		Help: "Total number of sessions handled since start.",
	})

	EventsFannedOut = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chathub_events_fanned_out_total",
		Help: "Events routed through the fan-out pipeline, per event name.",
	}, []string{"event"})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chathub_events_dropped_total",
		Help: "Events dropped because the pipeline channel was full.",
	})

	DeliveriesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chathub_deliveries_dropped_total",
		Help: "Per-sink deliveries that failed or timed out.",
	})

	MessagesStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chathub_messages_stored_total",
		Help: "Messages accepted and persisted.",
	})

	MessagesCensored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chathub_messages_censored_total",
		Help: "Messages whose content was altered by moderation.",
	})

	ProcessRSSBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chathub_process_rss_bytes",
		Help: "Resident memory of the server process.",
	})

	ProcessCPUPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chathub_process_cpu_percent",
		Help: "CPU usage of the server process.",
	})
)
