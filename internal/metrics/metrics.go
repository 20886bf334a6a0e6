// Package metrics exposes Prometheus counters for the portal: role
// transitions, toast notifications and the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names.
const (
	MetricRoleTransitionsTotal    = "portal_role_transitions_total"
	MetricToastsTotal             = "portal_toasts_total"
	MetricHTTPRequestsTotal       = "portal_http_requests_total"
	MetricHTTPRequestDurationSecs = "portal_http_request_duration_seconds"
)

// Metrics holds the portal's Prometheus collectors. Safe for concurrent use.
// It implements the portal's Observer contract.
type Metrics struct {
	registry        *prometheus.Registry
	roleTransitions *prometheus.CounterVec
	toasts          *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New builds a registry with all portal collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		roleTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRoleTransitionsTotal,
			Help: "Role transitions by source and target role.",
		}, []string{"from", "to"}),
		toasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricToastsTotal,
			Help: "Toast notifications shown, by severity.",
		}, []string{"severity"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPRequestDurationSecs,
			Help:    "HTTP request duration in seconds, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(m.roleTransitions, m.toasts, m.httpRequests, m.httpDuration)
	return m
}

// RoleTransition counts one portal role change.
func (m *Metrics) RoleTransition(from, to string) {
	m.roleTransitions.WithLabelValues(from, to).Inc()
}

// ToastShown counts one toast notification.
func (m *Metrics) ToastShown(severity string) {
	m.toasts.WithLabelValues(severity).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
