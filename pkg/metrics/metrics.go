package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors exposed by the gateway.
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendRequestsTotal *prometheus.CounterVec

	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    *prometheus.CounterVec
	CacheCoalescedTotal *prometheus.CounterVec
	CacheErrorsTotal    *prometheus.CounterVec
}

// New registers and returns the gateway collectors. Call once at startup.
func New(serviceName string) *Metrics {
	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests handled, by method, route and status code.",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		BackendRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Requests issued to the salon backend, by resource and outcome.",
		}, []string{"service", "resource", "outcome"}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Response cache hits, by key.",
		}, []string{"service", "key"}),

		CacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Response cache misses that triggered a fetch, by key.",
		}, []string{"service", "key"}),

		CacheCoalescedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "response_cache_coalesced_total",
			Help: "Requests that joined an in-flight fetch instead of issuing their own, by key.",
		}, []string{"service", "key"}),

		CacheErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "response_cache_fetch_errors_total",
			Help: "Failed cache fetches, by key.",
		}, []string{"service", "key"}),
	}
}

// CacheHit implements the respcache.Recorder contract.
func (m *Metrics) CacheHit(key string) {
	m.CacheHitsTotal.WithLabelValues(m.service, key).Inc()
}

func (m *Metrics) CacheMiss(key string) {
	m.CacheMissesTotal.WithLabelValues(m.service, key).Inc()
}

func (m *Metrics) CacheCoalesced(key string) {
	m.CacheCoalescedTotal.WithLabelValues(m.service, key).Inc()
}

func (m *Metrics) CacheError(key string) {
	m.CacheErrorsTotal.WithLabelValues(m.service, key).Inc()
}

// BackendRequest implements the salonapi.Recorder contract.
func (m *Metrics) BackendRequest(resource, outcome string) {
	m.BackendRequestsTotal.WithLabelValues(m.service, resource, outcome).Inc()
}

// ObserveHTTP records one handled HTTP request.
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(seconds)
}
