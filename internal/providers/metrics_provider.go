package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"globalpass/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncIntent(kind string)
	ObserveGenerationDuration(duration time.Duration)
	IncGenerationFailures()
	ObserveCatalogRefresh(duration time.Duration)
	SetCatalogPackages(country string, count int)
	SetCatalogCountries(count int)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	intentsTotal       *prometheus.CounterVec
	generationDuration prometheus.Histogram
	generationFailures prometheus.Counter
	catalogRefresh     prometheus.Histogram
	catalogPackages    *prometheus.GaugeVec
	catalogCountries   prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncIntent(kind string) {
	m.intentsTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObserveGenerationDuration(duration time.Duration) {
	m.generationDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncGenerationFailures() {
	m.generationFailures.Inc()
}

func (m *MetricsProvider) ObserveCatalogRefresh(duration time.Duration) {
	m.catalogRefresh.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetCatalogPackages(country string, count int) {
	m.catalogPackages.WithLabelValues(country).Set(float64(count))
}

func (m *MetricsProvider) SetCatalogCountries(count int) {
	m.catalogCountries.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "globalpass_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "globalpass_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "globalpass_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "globalpass_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		intentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "globalpass_assistant_intents_total",
			Help: "Assistant questions by classified intent",
		}, []string{"intent"}),

		generationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "globalpass_generation_duration_seconds",
			Help:    "Duration of external text generation calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		}),

		generationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "globalpass_generation_failures_total",
			Help: "Total number of failed text generation calls",
		}),

		catalogRefresh: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "globalpass_catalog_refresh_duration_seconds",
			Help:    "Duration of catalog fetches in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		catalogPackages: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "globalpass_catalog_packages",
			Help: "Number of catalog packages per country",
		}, []string{"country"}),

		catalogCountries: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "globalpass_catalog_countries",
			Help: "Number of countries in the catalog",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncIntent(_ string)                               {}
func (n *noopMetrics) ObserveGenerationDuration(_ time.Duration)        {}
func (n *noopMetrics) IncGenerationFailures()                           {}
func (n *noopMetrics) ObserveCatalogRefresh(_ time.Duration)            {}
func (n *noopMetrics) SetCatalogPackages(_ string, _ int)               {}
func (n *noopMetrics) SetCatalogCountries(_ int)                        {}
