package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency metadata
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported currency ordered by code.
	ListCurrencies(ctx context.Context) []domain.Currency

	// GetCurrencyInfo returns the metadata of one currency.
	GetCurrencyInfo(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// DetectFromLocation maps an ISO country code to its currency, falling back to the default currency.
	DetectFromLocation(ctx context.Context, countryCode string) domain.Currency

	// DetectFromMarket infers the trading currency of a ticker symbol from its exchange suffix.
	DetectFromMarket(ctx context.Context, ticker string) domain.Currency
}

// CurrencyFormatterSvc renders amounts for display
type CurrencyFormatterSvc interface {
	Format(ctx context.Context, amount float64, currencyCode, locale string) (string, error)
	FormatWithConversion(ctx context.Context, amount domain.CurrencyAmount, targetCurrency, locale string) (string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyFormatterSvc
}

// ExchangeRateReaderSvc defines read operations for live exchange rates
type ExchangeRateReaderSvc interface {
	// GetRate resolves a rate through the fallback chain. It only fails on invalid codes.
	GetRate(ctx context.Context, fromCode, toCode string) (domain.ExchangeRate, error)

	// Convert converts amount from one currency into another.
	Convert(ctx context.Context, amount float64, fromCode, toCode string) (domain.Conversion, error)

	// ConvertBatch converts each entry independently, preserving input order.
	ConvertBatch(ctx context.Context, requests []domain.ConversionRequest) []domain.Conversion

	// GetCacheStatus describes the live rate cache.
	GetCacheStatus(ctx context.Context) domain.CacheStatus
}

// ExchangeRateWriterSvc defines operations that mutate the live rate state
type ExchangeRateWriterSvc interface {
	// RefreshRates drops all cached rates so the next lookups go to the providers.
	RefreshRates(ctx context.Context) domain.CacheStatus
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// HistoricalRateSvcFacade serves daily rate series
type HistoricalRateSvcFacade interface {
	// GetHistoricalRates returns one rate per calendar day from start to end inclusive.
	GetHistoricalRates(ctx context.Context, fromCode, toCode string, start, end time.Time) ([]domain.HistoricalExchangeRate, error)
}
