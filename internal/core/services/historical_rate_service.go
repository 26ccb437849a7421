package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/ports/providers"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/platform/metrics"
	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultHistoryCacheSize = 4096
	DefaultHistoryMaxDays   = 366

	// synthetic daily rates wobble by at most this fraction around the base rate
	syntheticDailySwing = 0.02
)

// HistoricalConfig bounds the historical rate service.
type HistoricalConfig struct {
	CacheSize int
	MaxDays   int
	Fetch     FetchConfig
}

// DefaultHistoricalConfig uses a single attempt per day: a failing provider
// over a long range would otherwise multiply the delays.
func DefaultHistoricalConfig() HistoricalConfig {
	fetch := DefaultFetchConfig()
	fetch.Attempts = 1
	fetch.ProviderRateLimit = ""
	return HistoricalConfig{
		CacheSize: DefaultHistoryCacheSize,
		MaxDays:   DefaultHistoryMaxDays,
		Fetch:     fetch,
	}
}

// HistoricalRateService resolves one rate per calendar day. Each day degrades
// on its own: historical-api, then a synthetic rate tagged fallback (endpoint
// failed) or mock (no provider serves history).
type HistoricalRateService struct {
	registry  *domain.CurrencyRegistry
	providers []providers.HistoricalRateProvider
	cache     *lru.Cache[string, domain.HistoricalExchangeRate]
	cfg       HistoricalConfig
	metrics   *metrics.FXMetrics
	logger    *slog.Logger
}

type HistoricalOption func(*HistoricalRateService)

func WithHistoricalConfig(cfg HistoricalConfig) HistoricalOption {
	return func(s *HistoricalRateService) {
		s.cfg = cfg
	}
}

func WithHistoricalMetrics(m *metrics.FXMetrics) HistoricalOption {
	return func(s *HistoricalRateService) {
		s.metrics = m
	}
}

func WithHistoricalLogger(logger *slog.Logger) HistoricalOption {
	return func(s *HistoricalRateService) {
		s.logger = logger
	}
}

// NewHistoricalRateService keeps the providers that expose a historical endpoint.
func NewHistoricalRateService(registry *domain.CurrencyRegistry, rateProviders []providers.RateProvider, opts ...HistoricalOption) (*HistoricalRateService, error) {
	s := &HistoricalRateService{
		registry: registry,
		cfg:      DefaultHistoricalConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, p := range rateProviders {
		if hp, ok := p.(providers.HistoricalRateProvider); ok && hp.SupportsHistory() {
			s.providers = append(s.providers, hp)
		}
	}
	if s.cfg.CacheSize <= 0 {
		s.cfg.CacheSize = DefaultHistoryCacheSize
	}
	if s.cfg.MaxDays <= 0 {
		s.cfg.MaxDays = DefaultHistoryMaxDays
	}
	cache, err := lru.New[string, domain.HistoricalExchangeRate](s.cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create historical rate cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// GetHistoricalRates returns one entry per day from start to end inclusive, ascending.
// end before start yields an empty list.
func (s *HistoricalRateService) GetHistoricalRates(ctx context.Context, fromCode, toCode string, start, end time.Time) ([]domain.HistoricalExchangeRate, error) {
	from, err := s.registry.Normalize(fromCode)
	if err != nil {
		return nil, fmt.Errorf("invalid 'from' currency: %w", err)
	}
	to, err := s.registry.Normalize(toCode)
	if err != nil {
		return nil, fmt.Errorf("invalid 'to' currency: %w", err)
	}

	first, last := domain.CivilDate(start), domain.CivilDate(end)
	if last.Before(first) {
		return []domain.HistoricalExchangeRate{}, nil
	}
	days := int(last.Sub(first).Hours()/24) + 1
	if days > s.cfg.MaxDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds the maximum of %d", apperrors.ErrValidation, days, s.cfg.MaxDays)
	}

	rates := make([]domain.HistoricalExchangeRate, 0, days)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		rate := s.resolveDay(ctx, from, to, day)
		s.metrics.ObserveHistorical(rate.Source)
		rates = append(rates, rate)
	}
	return rates, nil
}

func (s *HistoricalRateService) resolveDay(ctx context.Context, from, to string, day time.Time) domain.HistoricalExchangeRate {
	if from == to {
		return historicalRate(from, to, day, 1.0, domain.SourceInternal)
	}

	key := from + ":" + to + ":" + day.Format(domain.DateLayout)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	if len(s.providers) == 0 {
		return historicalRate(from, to, day, s.syntheticDailyRate(from, to, day), domain.SourceMock)
	}

	for _, p := range s.providers {
		rate, err := s.fetchDay(ctx, p, from, to, day)
		if err != nil {
			s.logger.DebugContext(ctx, "Historical rate fetch failed",
				slog.String("provider", p.Name()), slog.String("date", day.Format(domain.DateLayout)),
				slog.String("error", err.Error()))
			continue
		}
		result := historicalRate(from, to, day, rate, domain.SourceHistoricalAPI)
		s.cache.Add(key, result)
		return result
	}
	return historicalRate(from, to, day, s.syntheticDailyRate(from, to, day), domain.SourceFallback)
}

func (s *HistoricalRateService) fetchDay(ctx context.Context, p providers.HistoricalRateProvider, from, to string, day time.Time) (float64, error) {
	op := func() (float64, error) {
		attemptCtx, cancel := withAttemptTimeout(ctx, s.cfg.Fetch.AttemptTimeout)
		defer cancel()

		start := time.Now()
		rate, err := p.FetchHistoricalRate(attemptCtx, from, to, day)
		if err == nil {
			err = validateRate(rate)
		}
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		s.metrics.ObserveProviderRequest(p.Name(), outcome, time.Since(start))
		return rate, err
	}
	return backoff.RetryWithData(op, newRetryPolicy(ctx, s.cfg.Fetch))
}

// syntheticDailyRate is the static approximation moved by a deterministic daily
// swing, so a series is stable across calls and never zero.
func (s *HistoricalRateService) syntheticDailyRate(from, to string, day time.Time) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(from + to))
	phase := float64(h.Sum32()%360) * math.Pi / 180
	dayNumber := float64(day.Unix() / 86400)
	return s.registry.ApproximateRate(from, to) * (1 + syntheticDailySwing*math.Sin(dayNumber/7+phase))
}

func historicalRate(from, to string, day time.Time, rate float64, source domain.RateSource) domain.HistoricalExchangeRate {
	return domain.HistoricalExchangeRate{
		ExchangeRate: domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             rate,
			Timestamp:        day,
			Source:           source,
		},
		Date: day.Format(domain.DateLayout),
	}
}

var _ portssvc.HistoricalRateSvcFacade = (*HistoricalRateService)(nil)
