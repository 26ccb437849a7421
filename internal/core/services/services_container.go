package services

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/ports/providers"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/platform/config"
	"github.com/SscSPs/money_fx_service/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// m may be nil to disable metrics.
func NewServiceContainer(
	cfg *config.Config,
	registry *domain.CurrencyRegistry,
	rateProviders []providers.RateProvider,
	m *metrics.FXMetrics,
	logger *slog.Logger,
) (*portssvc.ServiceContainer, error) {
	fetch := FetchConfig{
		Attempts:          cfg.FetchAttempts,
		RetryDelay:        cfg.RetryDelay,
		RetryStrategy:     RetryStrategy(cfg.RetryStrategy),
		AttemptTimeout:    cfg.AttemptTimeout,
		ProviderRateLimit: cfg.ProviderRateLimit,
	}

	exchangeRate := NewExchangeRateService(registry, NewRateCache(cfg.CacheTTL), rateProviders,
		WithFetchConfig(fetch),
		WithExchangeRateMetrics(m),
		WithExchangeRateLogger(logger.With(slog.String("service", "exchange_rate"))),
	)

	historyCfg := DefaultHistoricalConfig()
	historyCfg.CacheSize = cfg.HistoryCacheSize
	historyCfg.MaxDays = cfg.HistoryMaxDays
	historyCfg.Fetch.RetryDelay = fetch.RetryDelay
	historyCfg.Fetch.RetryStrategy = fetch.RetryStrategy
	historyCfg.Fetch.AttemptTimeout = fetch.AttemptTimeout
	historical, err := NewHistoricalRateService(registry, rateProviders,
		WithHistoricalConfig(historyCfg),
		WithHistoricalMetrics(m),
		WithHistoricalLogger(logger.With(slog.String("service", "historical_rate"))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create historical rate service: %w", err)
	}

	policy := DefaultRiskPolicy()
	policy.HighConcentrationPercent = cfg.RiskHighPercent
	policy.LowMaxPercent = cfg.RiskLowMaxPercent
	policy.MediumMaxPercent = cfg.RiskMediumMaxPercent

	reporting := cfg.ReportingCurrency
	if !registry.IsSupported(reporting) {
		return nil, fmt.Errorf("unsupported FX_REPORTING_CURRENCY %q", reporting)
	}

	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(registry,
			WithDefaultCurrency(cfg.DefaultCurrency),
			WithCurrencyLogger(logger.With(slog.String("service", "currency"))),
		),
		ExchangeRate:   exchangeRate,
		HistoricalRate: historical,
		Exposure: NewExposureService(registry, exchangeRate,
			WithRiskPolicy(policy),
			WithReportingCurrency(reporting),
			WithExposureLogger(logger.With(slog.String("service", "exposure"))),
		),
	}, nil
}
