// Package metrics exposes Prometheus instruments for the HTTP surface and the
// authentication flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"vendorhub/config"
	"vendorhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Flow outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

const namespace = "vendorhub"

// Metrics holds the service instruments on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	authFlows       *prometheus.CounterVec
	tokensIssued    *prometheus.CounterVec
	publishFailures *prometheus.CounterVec
	eventsReceived  *prometheus.CounterVec
	path            string
	enabled         bool
}

// New creates and registers every instrument along with the Go and process collectors.
func New(cfg *config.Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		authFlows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_flows_total",
				Help:      "Total number of authentication flow executions by outcome",
			},
			[]string{"flow", "account_type", "outcome"},
		),
		tokensIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_issued_total",
				Help:      "Total number of stored tokens issued by kind",
			},
			[]string{"kind"},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Total number of account events that could not be published",
			},
			[]string{"event"},
		),
		eventsReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_received_total",
				Help:      "Total number of account events consumed by the worker by outcome",
			},
			[]string{"event", "outcome"},
		),
		path:    "/metrics",
		enabled: true,
	}

	if cfg != nil {
		m.enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Path != "" {
			m.path = cfg.Metrics.Path
		}
	}

	registry.MustRegister(m.httpRequests, m.httpDuration, m.authFlows, m.tokensIssued, m.publishFailures, m.eventsReceived)

	return m
}

// Enabled reports whether the scrape endpoint should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Path is the route the scrape endpoint is mounted on.
func (m *Metrics) Path() string {
	return m.path
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveHTTPRequest records one served request. route is the matched route
// template, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordAuthFlow counts one flow execution.
func (m *Metrics) RecordAuthFlow(flow, accountType string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.authFlows.WithLabelValues(flow, accountType, outcome).Inc()
}

// RecordTokenIssued counts one stored token.
func (m *Metrics) RecordTokenIssued(kind string) {
	m.tokensIssued.WithLabelValues(kind).Inc()
}

// RecordEventPublishFailure counts one dropped account event.
func (m *Metrics) RecordEventPublishFailure(event string) {
	m.publishFailures.WithLabelValues(event).Inc()
}

// RecordEventReceived counts one account event delivered to the worker.
func (m *Metrics) RecordEventReceived(event string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.eventsReceived.WithLabelValues(event, outcome).Inc()
}

var _ service.FlowRecorder = (*Metrics)(nil)

// NewFlowRecorder exposes the instruments to the use case layer.
func NewFlowRecorder(m *Metrics) service.FlowRecorder {
	return m
}
