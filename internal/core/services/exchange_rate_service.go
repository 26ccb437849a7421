package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/ports/providers"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/platform/metrics"
	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/singleflight"
)

// RetryStrategy selects the delay policy between provider attempts.
type RetryStrategy string

const (
	RetryFixed       RetryStrategy = "fixed"
	RetryExponential RetryStrategy = "exponential"
)

// FetchConfig bounds the network tier.
type FetchConfig struct {
	Attempts          int           // attempts per provider, at least 1
	RetryDelay        time.Duration // fixed delay, or initial delay when exponential
	RetryStrategy     RetryStrategy
	AttemptTimeout    time.Duration // each attempt is cancelled after this
	ProviderRateLimit string        // ulule/limiter format, e.g. "60-M"; empty disables throttling
}

// DefaultFetchConfig returns the settings used when nothing is configured.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Attempts:          3,
		RetryDelay:        500 * time.Millisecond,
		RetryStrategy:     RetryExponential,
		AttemptTimeout:    5 * time.Second,
		ProviderRateLimit: "60-M",
	}
}

// budget is the longest a full provider round may take: every attempt timing
// out and every retry waiting its longest delay. Zero means unbounded, which
// only happens when attempts have no timeout.
func (cfg FetchConfig) budget(providerCount int) time.Duration {
	if cfg.AttemptTimeout <= 0 || providerCount == 0 {
		return 0
	}
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	maxDelay := cfg.RetryDelay
	if cfg.RetryStrategy == RetryExponential {
		// randomization can stretch an interval by half
		maxDelay = time.Duration(float64(cfg.RetryDelay) * 1.5 * math.Pow(backoff.DefaultMultiplier, float64(attempts-1)))
		if maxDelay > backoff.DefaultMaxInterval {
			maxDelay = backoff.DefaultMaxInterval
		}
	}
	perProvider := time.Duration(attempts)*cfg.AttemptTimeout + time.Duration(attempts-1)*maxDelay
	return time.Duration(providerCount) * perProvider
}

var (
	errProviderThrottled = errors.New("provider rate limit reached")
	errInvalidRate       = errors.New("provider returned an invalid rate")
)

// rateTier is one stage of the fallback chain. It either produces a rate or declines.
type rateTier struct {
	source  domain.RateSource
	resolve func(ctx context.Context, from, to string) (domain.ExchangeRate, bool)
}

// ExchangeRateService resolves live rates through an ordered chain of tiers
// (internal, cache, api, stale-cache, fallback) and converts amounts with them.
type ExchangeRateService struct {
	registry  *domain.CurrencyRegistry
	cache     *RateCache
	providers []providers.RateProvider
	cfg       FetchConfig
	limiter   *limiter.Limiter
	inflight  singleflight.Group
	metrics   *metrics.FXMetrics
	logger    *slog.Logger
	tiers     []rateTier
}

// ExchangeRateOption configures an ExchangeRateService.
type ExchangeRateOption func(*ExchangeRateService)

func WithFetchConfig(cfg FetchConfig) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.cfg = cfg
	}
}

func WithExchangeRateMetrics(m *metrics.FXMetrics) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.metrics = m
	}
}

func WithExchangeRateLogger(logger *slog.Logger) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.logger = logger
	}
}

// NewExchangeRateService creates the live rate service. Providers are tried in order.
func NewExchangeRateService(registry *domain.CurrencyRegistry, cache *RateCache, rateProviders []providers.RateProvider, opts ...ExchangeRateOption) *ExchangeRateService {
	s := &ExchangeRateService{
		registry:  registry,
		cache:     cache,
		providers: rateProviders,
		cfg:       DefaultFetchConfig(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.ProviderRateLimit != "" {
		rate, err := limiter.NewRateFromFormatted(s.cfg.ProviderRateLimit)
		if err != nil {
			s.logger.Warn("Invalid provider rate limit, throttling disabled",
				slog.String("rate_limit", s.cfg.ProviderRateLimit), slog.String("error", err.Error()))
		} else {
			s.limiter = limiter.New(memory.NewStore(), rate)
		}
	}

	s.tiers = []rateTier{
		{domain.SourceInternal, s.sameCurrencyTier},
		{domain.SourceCache, s.freshCacheTier},
		{domain.SourceAPI, s.networkTier},
		{domain.SourceStaleCache, s.staleCacheTier},
		{domain.SourceFallback, s.syntheticTier},
	}
	return s
}

// Tiers returns the fallback chain in the order it is evaluated.
func (s *ExchangeRateService) Tiers() []domain.RateSource {
	out := make([]domain.RateSource, len(s.tiers))
	for i, t := range s.tiers {
		out[i] = t.source
	}
	return out
}

// GetRate returns a usable rate for the pair. Only unsupported codes produce an error.
func (s *ExchangeRateService) GetRate(ctx context.Context, fromCode, toCode string) (domain.ExchangeRate, error) {
	from, to, err := s.normalizePair(fromCode, toCode)
	if err != nil {
		return domain.ExchangeRate{}, err
	}
	return s.resolve(ctx, from, to), nil
}

// Convert converts amount with the resolved rate. No rounding is applied.
func (s *ExchangeRateService) Convert(ctx context.Context, amount float64, fromCode, toCode string) (domain.Conversion, error) {
	from, to, err := s.normalizePair(fromCode, toCode)
	if err != nil {
		return domain.Conversion{}, err
	}
	if !isFinite(amount) {
		return domain.Conversion{}, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}
	rate := s.resolve(ctx, from, to)
	original := domain.CurrencyAmount{Amount: amount, Currency: from}
	converted := original.WithConversion(rate)
	if !isFinite(*converted.ConvertedAmount) {
		return domain.Conversion{}, fmt.Errorf("%w: %s %g is out of range in %s", apperrors.ErrValidation, from, amount, to)
	}
	return domain.Conversion{
		CurrencyAmount: converted,
		TargetCurrency: to,
		Source:         rate.Source,
	}, nil
}

// ConvertBatch converts every request independently. An entry with an invalid
// currency code carries its own error and does not affect the others.
func (s *ExchangeRateService) ConvertBatch(ctx context.Context, requests []domain.ConversionRequest) []domain.Conversion {
	results := make([]domain.Conversion, len(requests))
	for i, req := range requests {
		conv, err := s.Convert(ctx, req.Amount, req.From, req.To)
		if err != nil {
			results[i] = domain.Conversion{
				CurrencyAmount: domain.CurrencyAmount{Amount: req.Amount, Currency: domain.NormalizeCurrencyCode(req.From)},
				TargetCurrency: domain.NormalizeCurrencyCode(req.To),
				Error:          err.Error(),
			}
			continue
		}
		results[i] = conv
	}
	return results
}

// RefreshRates clears the live cache; the next lookups skip the cache tier.
func (s *ExchangeRateService) RefreshRates(ctx context.Context) domain.CacheStatus {
	s.cache.InvalidateAll()
	s.metrics.SetCacheEntries(0)
	s.logger.InfoContext(ctx, "Exchange rate cache invalidated")
	return s.cache.Status()
}

// GetCacheStatus describes the live cache.
func (s *ExchangeRateService) GetCacheStatus(ctx context.Context) domain.CacheStatus {
	return s.cache.Status()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *ExchangeRateService) normalizePair(fromCode, toCode string) (string, string, error) {
	from, err := s.registry.Normalize(fromCode)
	if err != nil {
		return "", "", fmt.Errorf("invalid 'from' currency: %w", err)
	}
	to, err := s.registry.Normalize(toCode)
	if err != nil {
		return "", "", fmt.Errorf("invalid 'to' currency: %w", err)
	}
	return from, to, nil
}

// resolve walks the tiers and returns the first result. The last tier never declines.
func (s *ExchangeRateService) resolve(ctx context.Context, from, to string) domain.ExchangeRate {
	for _, tier := range s.tiers {
		rate, ok := tier.resolve(ctx, from, to)
		if !ok {
			continue
		}
		s.metrics.ObserveResolution(rate.Source)
		if rate.Source.Degraded() {
			s.logger.WarnContext(ctx, "Serving degraded exchange rate",
				slog.String("from", from), slog.String("to", to),
				slog.String("source", string(rate.Source)), slog.Float64("rate", rate.Rate))
		}
		return rate
	}
	rate, _ := s.syntheticTier(ctx, from, to)
	return rate
}

func (s *ExchangeRateService) sameCurrencyTier(_ context.Context, from, to string) (domain.ExchangeRate, bool) {
	if from != to {
		return domain.ExchangeRate{}, false
	}
	return domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             1.0,
		Timestamp:        s.cache.Now(),
		Source:           domain.SourceInternal,
	}, true
}

func (s *ExchangeRateService) freshCacheTier(_ context.Context, from, to string) (domain.ExchangeRate, bool) {
	entry, ok := s.cache.Get(from, to)
	if !ok || !entry.Fresh(s.cache.Now()) {
		return domain.ExchangeRate{}, false
	}
	rate := entry.Rate
	rate.Source = domain.SourceCache
	return rate, true
}

// staleCacheTier serves an expired entry without refreshing it.
func (s *ExchangeRateService) staleCacheTier(_ context.Context, from, to string) (domain.ExchangeRate, bool) {
	entry, ok := s.cache.Get(from, to)
	if !ok {
		return domain.ExchangeRate{}, false
	}
	rate := entry.Rate
	rate.Source = domain.SourceStaleCache
	return rate, true
}

// syntheticTier produces a deterministic approximate rate. It is never cached.
func (s *ExchangeRateService) syntheticTier(_ context.Context, from, to string) (domain.ExchangeRate, bool) {
	return domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             s.registry.ApproximateRate(from, to),
		Timestamp:        s.cache.Now(),
		Source:           domain.SourceFallback,
	}, true
}

// networkTier asks the providers in order and caches the first valid rate.
// Identical concurrent fetches share one round of provider calls. The shared
// round is detached from any single caller's cancellation and bounded by the
// fetch budget instead; a caller that gives up falls through to the next tier
// while the round still fills the cache for the others.
func (s *ExchangeRateService) networkTier(ctx context.Context, from, to string) (domain.ExchangeRate, bool) {
	if len(s.providers) == 0 {
		return domain.ExchangeRate{}, false
	}
	ch := s.inflight.DoChan(from+":"+to, func() (interface{}, error) {
		fetchCtx, cancel := s.sharedFetchContext(ctx)
		defer cancel()

		rate, err := s.fetchFromProviders(fetchCtx, from, to)
		if err != nil {
			return nil, err
		}
		entry := s.cache.Put(from, to, rate, domain.SourceAPI)
		s.metrics.SetCacheEntries(s.cache.Len())
		return entry.Rate, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.ExchangeRate{}, false
		}
		return res.Val.(domain.ExchangeRate), true
	case <-ctx.Done():
		s.logger.DebugContext(ctx, "Caller left before the provider round finished",
			slog.String("from", from), slog.String("to", to))
		return domain.ExchangeRate{}, false
	}
}

// sharedFetchContext keeps the caller's values but not its cancellation.
func (s *ExchangeRateService) sharedFetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if budget := s.cfg.budget(len(s.providers)); budget > 0 {
		return context.WithTimeout(detached, budget)
	}
	return context.WithCancel(detached)
}

func (s *ExchangeRateService) fetchFromProviders(ctx context.Context, from, to string) (float64, error) {
	var errs *multierror.Error
	for _, p := range s.providers {
		rate, err := s.fetchWithRetry(ctx, p, from, to)
		if err == nil {
			return rate, nil
		}
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	err := errs.ErrorOrNil()
	s.logger.WarnContext(ctx, "All rate providers failed",
		slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
	return 0, err
}

func (s *ExchangeRateService) fetchWithRetry(ctx context.Context, p providers.RateProvider, from, to string) (float64, error) {
	attempt := 0
	op := func() (float64, error) {
		attempt++
		if err := s.throttle(ctx, p.Name()); err != nil {
			return 0, backoff.Permanent(err)
		}
		attemptCtx, cancel := withAttemptTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()

		start := time.Now()
		rate, err := p.FetchRate(attemptCtx, from, to)
		if err == nil {
			err = validateRate(rate)
		}
		if err != nil {
			s.metrics.ObserveProviderRequest(p.Name(), "error", time.Since(start))
			s.logger.DebugContext(ctx, "Rate provider attempt failed",
				slog.String("provider", p.Name()), slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return 0, err
		}
		s.metrics.ObserveProviderRequest(p.Name(), "success", time.Since(start))
		return rate, nil
	}
	return backoff.RetryWithData(op, newRetryPolicy(ctx, s.cfg))
}

// throttle enforces the outbound rate limit per provider.
func (s *ExchangeRateService) throttle(ctx context.Context, provider string) error {
	if s.limiter == nil {
		return nil
	}
	limit, err := s.limiter.Get(ctx, provider)
	if err != nil {
		return fmt.Errorf("provider rate limit check: %w", err)
	}
	if limit.Reached {
		return fmt.Errorf("%w: %s", errProviderThrottled, provider)
	}
	return nil
}

// newRetryPolicy bounds the attempts and spaces them by the configured strategy.
func newRetryPolicy(ctx context.Context, cfg FetchConfig) backoff.BackOff {
	var policy backoff.BackOff
	switch cfg.RetryStrategy {
	case RetryExponential:
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = cfg.RetryDelay
		exp.MaxElapsedTime = 0
		policy = exp
	default:
		policy = backoff.NewConstantBackOff(cfg.RetryDelay)
	}
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(policy, uint64(attempts-1)), ctx)
}

func withAttemptTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: %v", errInvalidRate, rate)
	}
	return nil
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
