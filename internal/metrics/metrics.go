package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the skill
type Metrics struct {
	registry *prometheus.Registry

	// Turn metrics
	TurnsTotal    *prometheus.CounterVec
	FailuresTotal *prometheus.CounterVec

	// Provider metrics
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		TurnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skill_turns_total",
				Help: "Total number of dialogue turns by outcome",
			},
			[]string{"action"},
		),
		FailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skill_failures_total",
				Help: "Total number of turns that ended in a skill-level fault",
			},
			[]string{"reason"},
		),
		ProviderRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_requests_total",
				Help: "Total number of word/lexicon provider calls",
			},
			[]string{"provider", "status"},
		),
		ProviderRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Duration of word/lexicon provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}

	m.registry.MustRegister(m.TurnsTotal)
	m.registry.MustRegister(m.FailuresTotal)
	m.registry.MustRegister(m.ProviderRequestsTotal)
	m.registry.MustRegister(m.ProviderRequestDuration)

	return m
}

// RecordTurn counts a completed turn.
func (m *Metrics) RecordTurn(action string) {
	m.TurnsTotal.WithLabelValues(action).Inc()
}

// RecordFailure counts a turn that could not be answered.
func (m *Metrics) RecordFailure(reason string) {
	m.FailuresTotal.WithLabelValues(reason).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
