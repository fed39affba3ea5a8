// Package metrics exposes Prometheus collectors for HTTP traffic, lifecycle
// transitions and the grievance sweep.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campusdesk"

// Metrics holds every collector of the service, registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec

	sweepProcessed *prometheus.CounterVec
	sweepDuration  *prometheus.HistogramVec
	sweepFailures  *prometheus.CounterVec
	expiredGauge   prometheus.Gauge

	buildInfo *prometheus.GaugeVec
}

// New creates and registers all collectors on a fresh registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_transitions_total",
			Help:      "Committed lifecycle mutations by entity and audit action.",
		}, []string{"entity", "action"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_rejections_total",
			Help:      "Lifecycle mutations rejected by rule, by entity and reason.",
		}, []string{"entity", "reason"}),

		sweepProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_items_total",
			Help:      "Items changed by the policy sweep, by pass.",
		}, []string{"pass"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_pass_duration_seconds",
			Help:      "Duration of one sweep pass.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"pass"}),
		sweepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_failures_total",
			Help:      "Sweep passes or items that failed, by pass.",
		}, []string{"pass"}),
		expiredGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "opportunities_expired",
			Help:      "Opportunities past their auto-expire window at the last sweep.",
		}),

		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information.",
		}, []string{"version", "commit"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight, m.httpRequestsTotal, m.httpRequestDuration,
		m.transitions, m.rejections,
		m.sweepProcessed, m.sweepDuration, m.sweepFailures, m.expiredGauge,
		m.buildInfo,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SetBuildInfo sets build_info{version,commit} to 1.
func (m *Metrics) SetBuildInfo(version, commit string) {
	m.buildInfo.WithLabelValues(version, commit).Set(1)
}

// HTTPStarted marks a request as in flight.
func (m *Metrics) HTTPStarted() { m.httpInFlight.Inc() }

// HTTPFinished records a completed request. route must be a pattern, not
// the raw path, to keep label cardinality bounded.
func (m *Metrics) HTTPFinished(method, route string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.httpInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}

// RecordTransition counts a committed mutation.
func (m *Metrics) RecordTransition(entity, action string) {
	m.transitions.WithLabelValues(entity, action).Inc()
}

// RecordRejection counts a mutation refused by a lifecycle rule.
func (m *Metrics) RecordRejection(entity, reason string) {
	m.rejections.WithLabelValues(entity, reason).Inc()
}

// RecordSweepPass records one sweep pass.
func (m *Metrics) RecordSweepPass(pass string, changed int, failed int, d time.Duration) {
	m.sweepProcessed.WithLabelValues(pass).Add(float64(changed))
	if failed > 0 {
		m.sweepFailures.WithLabelValues(pass).Add(float64(failed))
	}
	m.sweepDuration.WithLabelValues(pass).Observe(d.Seconds())
}

// SetExpiredOpportunities publishes the expired opportunity count.
func (m *Metrics) SetExpiredOpportunities(n int) {
	m.expiredGauge.Set(float64(n))
}
