package metrics

import (
	"strconv"
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FXMetrics holds the collectors of the exchange-rate subsystem.
// A nil *FXMetrics is valid and records nothing.
type FXMetrics struct {
	// Rate resolutions by tier of the fallback chain
	RateResolutionsTotal *prometheus.CounterVec

	// Historical day resolutions by tier
	HistoricalResolutionsTotal *prometheus.CounterVec

	// Outbound provider calls
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec

	// Live cache size
	CacheEntries prometheus.Gauge

	// Inbound API traffic
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewFXMetrics registers the collectors with reg.
func NewFXMetrics(reg prometheus.Registerer) *FXMetrics {
	factory := promauto.With(reg)
	return &FXMetrics{
		RateResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_rate_resolutions_total",
				Help: "Exchange rates resolved, by the tier that supplied them",
			},
			[]string{"source"},
		),
		HistoricalResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_historical_resolutions_total",
				Help: "Historical daily rates resolved, by the tier that supplied them",
			},
			[]string{"source"},
		),
		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_provider_requests_total",
				Help: "Requests sent to remote rate providers",
			},
			[]string{"provider", "outcome"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fx_provider_request_duration_seconds",
				Help:    "Latency of remote rate provider requests",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),
		CacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fx_rate_cache_entries",
				Help: "Entries currently held in the live rate cache",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_http_requests_total",
				Help: "API requests served, by route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fx_http_request_duration_seconds",
				Help:    "Latency of API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *FXMetrics) ObserveResolution(source domain.RateSource) {
	if m == nil {
		return
	}
	m.RateResolutionsTotal.WithLabelValues(string(source)).Inc()
}

func (m *FXMetrics) ObserveHistorical(source domain.RateSource) {
	if m == nil {
		return
	}
	m.HistoricalResolutionsTotal.WithLabelValues(string(source)).Inc()
}

// ObserveProviderRequest records one provider attempt; outcome is "success" or "error".
func (m *FXMetrics) ObserveProviderRequest(provider, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (m *FXMetrics) SetCacheEntries(n int) {
	if m == nil {
		return
	}
	m.CacheEntries.Set(float64(n))
}

// ObserveHTTPRequest records one served API request.
func (m *FXMetrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
