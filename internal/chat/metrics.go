package chat

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts replies by intent and locale. Replies without a matched intent
// are counted under their fallback path ("documents" or "apology").
type Metrics struct {
	replies  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rejected *prometheus.CounterVec
}

// NewMetrics registers the chat collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		replies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concierge_replies_total",
				Help: "Total number of chatbot replies",
			},
			[]string{"intent", "locale"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "concierge_reply_duration_seconds",
				Help:    "Time spent retrieving and generating a reply",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"locale"},
		),
		rejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concierge_rejected_queries_total",
				Help: "Queries rejected before answering",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) observe(r *Reply, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := string(r.Intent)
	if label == "" {
		label = string(r.Fallback)
	}
	m.replies.WithLabelValues(label, string(r.Locale)).Inc()
	m.duration.WithLabelValues(string(r.Locale)).Observe(elapsed.Seconds())
}

func (m *Metrics) reject(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
