package aishub

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcome label values.
const (
	outcomeSuccess   = "success"
	outcomeTransport = "transport_error"
	outcomeStatus    = "http_status"
)

// Metrics holds Prometheus metrics for the HTTP fetcher. It registers into
// its own registry so embedding applications choose what to expose.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	registry        *prometheus.Registry
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "aishub"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of web service requests",
		},
		[]string{"outcome"},
	)

	m.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Web service request duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
	)

	return m
}

// Init pre-initializes the outcome label values with zero counts so the
// series appear in scrape output immediately. Prometheus *Vec types only
// emit lines after WithLabelValues() has been called at least once.
// Idempotent.
func (m *Metrics) Init() {
	for _, outcome := range []string{outcomeSuccess, outcomeTransport, outcomeStatus} {
		m.requestsTotal.WithLabelValues(outcome)
		m.requestDuration.WithLabelValues(outcome)
	}
}

// RecordRequest records one web service request.
func (m *Metrics) RecordRequest(outcome string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.requestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Registry returns the Prometheus registry holding the client metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
