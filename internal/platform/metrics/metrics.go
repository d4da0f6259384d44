package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the web client.
type Metrics struct {
	UpstreamDuration *prometheus.HistogramVec
	ScreenActions    *prometheus.CounterVec
	DuplicateSubmits prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UpstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vanta_upstream_request_duration_seconds",
			Help:    "Latency of backend API calls by operation and HTTP status",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"op", "status"}),
		ScreenActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vanta_screen_actions_total",
			Help: "User-triggered screen actions by screen and outcome",
		}, []string{"screen", "outcome"}),
		DuplicateSubmits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vanta_duplicate_submits_total",
			Help: "Submissions collapsed by the exactly-once action guard",
		}),
	}
}

// ObserveUpstream records the latency of one backend call.
func (m *Metrics) ObserveUpstream(op, status string, d time.Duration) {
	m.UpstreamDuration.WithLabelValues(op, status).Observe(d.Seconds())
}

// CountAction increments the action counter for a screen.
func (m *Metrics) CountAction(screen, outcome string) {
	m.ScreenActions.WithLabelValues(screen, outcome).Inc()
}
