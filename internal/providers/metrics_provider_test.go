package providers

import (
	"globalpass/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncIntent("country")
	m.ObserveGenerationDuration(time.Millisecond)
	m.IncGenerationFailures()
	m.ObserveCatalogRefresh(time.Millisecond)
	m.SetCatalogPackages("Japan", 10)
	m.SetCatalogCountries(10)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)

	// These should not panic
	m.IncRequestsTotal("/api/packages", 200)
	m.IncRequestsTotal("/api/packages", 404)
	m.ObserveRequestDuration("/api/packages", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncIntent("unlimited")
	m.ObserveGenerationDuration(800 * time.Millisecond)
	m.IncGenerationFailures()
	m.ObserveCatalogRefresh(100 * time.Millisecond)
	m.SetCatalogPackages("Japan", 42)
	m.SetCatalogCountries(12)
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
