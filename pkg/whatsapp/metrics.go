package whatsapp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WhatsApp webhook metrics
var (
	messagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_messages_processed_total",
			Help: "Total number of processed messages by reply source",
		},
		[]string{"source"}, // order, catalog, ai, degraded
	)

	statusCallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_status_callbacks_total",
			Help: "Total number of delivery status callbacks by status",
		},
		[]string{"status"}, // queued, sent, delivered, failed, etc
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // signature, empty_body, ai, session, render
	)

	aiReplyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whatsapp_ai_reply_duration_seconds",
			Help:    "Duration of AI fallback completions in seconds",
			Buckets: []float64{0.5, 1.5, 2.5, 3.5, 5, 10},
		},
	)
)
