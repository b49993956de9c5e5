// Package obs holds the service's Prometheus collectors.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector the service exports. Oracle metrics are
// labeled per upstream (amadeus, gmaps); HTTP metrics per route.
type Metrics struct {
	SearchesTotal  prometheus.Counter
	CacheHitsTotal prometheus.Counter

	OracleErrors  *prometheus.CounterVec
	OracleLatency *prometheus.HistogramVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	Registry *prometheus.Registry
}

// NewMetrics creates and registers all collectors on the given registry.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_searches_total",
			Help: "Total number of incoming offer-search requests",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_cache_hits_total",
			Help: "Number of cache hits for offer searches",
		}),
		OracleErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_errors_total",
			Help: "Errors returned by each upstream oracle",
		}, []string{"oracle"}),
		OracleLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oracle_latency_seconds",
				Help:    "Round-trip latency per upstream oracle",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"oracle"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.CacheHitsTotal,
		m.OracleErrors,
		m.OracleLatency,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// NewDefaultMetrics creates metrics on a fresh private registry.
func NewDefaultMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// Nop returns metrics on a private registry nothing scrapes. Clients use it
// as the default sink when no shared registry is wired in.
func Nop() *Metrics {
	return NewDefaultMetrics()
}

func (m *Metrics) IncSearches()  { m.SearchesTotal.Inc() }
func (m *Metrics) IncCacheHits() { m.CacheHitsTotal.Inc() }

func (m *Metrics) IncOracleFailure(oracle string) {
	m.OracleErrors.WithLabelValues(oracle).Inc()
}

func (m *Metrics) ObserveOracleLatency(oracle string, seconds float64) {
	m.OracleLatency.WithLabelValues(oracle).Observe(seconds)
}

func (m *Metrics) IncHTTPRequestsTotal(method, path, status string) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) ObserveHTTPRequestDuration(method, path, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// Handler exposes the registry for the /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
