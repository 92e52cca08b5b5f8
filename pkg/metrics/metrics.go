// Package metrics exposes Prometheus metrics for the scoreboard service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "scoreboard"

	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Metrics holds every collector the service records. The zero value is not
// usable; build one with New. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	resultUpdates       *prometheus.CounterVec
	medalConflicts      *prometheus.CounterVec
	cacheRequests       *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry, including Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		resultUpdates: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "results",
			Name:      "updates_total",
			Help:      "Medal assignments by medal and outcome (created, updated, rejected)",
		}, []string{"medal", "outcome"}),
		medalConflicts: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "results",
			Name:      "medal_conflicts_total",
			Help:      "Medal assignments rejected because another team holds the medal",
		}, []string{"medal"}),
		cacheRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Derived view cache lookups by view and outcome",
		}, []string{"view", "outcome"}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) RecordResultUpdate(medal, outcome string) {
	if m == nil {
		return
	}
	m.resultUpdates.WithLabelValues(medal, outcome).Inc()
}

func (m *Metrics) RecordMedalConflict(medal string) {
	if m == nil {
		return
	}
	m.medalConflicts.WithLabelValues(medal).Inc()
}

func (m *Metrics) RecordCacheLookup(view, outcome string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(view, outcome).Inc()
}
