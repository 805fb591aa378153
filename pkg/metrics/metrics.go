// Package metrics provides Prometheus metrics for the lost-and-found
// service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Label constants for metrics.
const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
)

// Metrics provides Prometheus metrics for the HTTP API and the disc
// lifecycle.
type Metrics struct {
	// HTTP request metrics
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	// Disc lifecycle counters
	discsReported prometheus.Counter
	discsClaimed  prometheus.Counter
}

// NewMetrics creates and registers the service metrics.
// If registry is nil, metrics are created but not registered (useful for testing).
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "discbin",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{LabelMethod, LabelRoute, LabelStatus},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "discbin",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{LabelMethod, LabelRoute},
		),

		requestInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "discbin",
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),

		discsReported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "discbin",
				Subsystem: "discs",
				Name:      "reported_total",
				Help:      "Total number of found discs reported",
			},
		),

		discsClaimed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "discbin",
				Subsystem: "discs",
				Name:      "claimed_total",
				Help:      "Total number of discs marked claimed",
			},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.requestTotal,
			m.requestDuration,
			m.requestInFlight,
			m.discsReported,
			m.discsClaimed,
		)
	}

	return m
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RequestStarted marks a request as in flight. The returned function
// marks it finished.
func (m *Metrics) RequestStarted() func() {
	m.requestInFlight.Inc()
	return m.requestInFlight.Dec
}

// DiscReported increments the reported-disc counter.
func (m *Metrics) DiscReported() {
	m.discsReported.Inc()
}

// DiscClaimed increments the claimed-disc counter.
func (m *Metrics) DiscClaimed() {
	m.discsClaimed.Inc()
}
