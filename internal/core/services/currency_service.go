package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/utils"
)

// exchange suffixes of ticker symbols, longest first when they overlap
var marketSuffixCurrency = map[string]string{
	"L": "GBP", "IL": "GBP",
	"T": "JPY",
	"TO": "CAD", "V": "CAD", "NE": "CAD",
	"DE": "EUR", "F": "EUR", "PA": "EUR", "AS": "EUR", "MI": "EUR", "MC": "EUR", "BR": "EUR", "LS": "EUR", "VI": "EUR", "HE": "EUR", "IR": "EUR",
	"SW": "CHF",
	"HK": "HKD",
	"AX": "AUD",
	"NZ": "NZD",
	"NS": "INR", "BO": "INR",
	"SS": "CNY", "SZ": "CNY",
	"KS": "KRW", "KQ": "KRW",
	"TW": "TWD",
	"SI": "SGD",
	"SA": "BRL",
	"MX": "MXN",
	"ST": "SEK",
	"OL": "NOK",
	"CO": "DKK",
	"WA": "PLN",
	"JO": "ZAR",
	"TA": "ILS",
	"IS": "TRY",
	"BK": "THB",
	"JK": "IDR",
	"KL": "MYR",
}

type CurrencyService struct {
	registry        *domain.CurrencyRegistry
	defaultCurrency string
	logger          *slog.Logger
}

type CurrencyOption func(*CurrencyService)

// WithDefaultCurrency sets the currency returned when detection finds nothing.
func WithDefaultCurrency(code string) CurrencyOption {
	return func(s *CurrencyService) {
		s.defaultCurrency = domain.NormalizeCurrencyCode(code)
	}
}

func WithCurrencyLogger(logger *slog.Logger) CurrencyOption {
	return func(s *CurrencyService) {
		s.logger = logger
	}
}

func NewCurrencyService(registry *domain.CurrencyRegistry, opts ...CurrencyOption) *CurrencyService {
	s := &CurrencyService{
		registry:        registry,
		defaultCurrency: "USD",
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !registry.IsSupported(s.defaultCurrency) {
		s.logger.Warn("Unsupported default currency, using USD", slog.String("currency", s.defaultCurrency))
		s.defaultCurrency = "USD"
	}
	return s
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return s.registry.All()
}

func (s *CurrencyService) GetCurrencyInfo(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.registry.Lookup(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, domain.NormalizeCurrencyCode(currencyCode))
	}
	return &currency, nil
}

func (s *CurrencyService) DetectFromLocation(ctx context.Context, countryCode string) domain.Currency {
	if code, ok := s.registry.CurrencyForCountry(countryCode); ok {
		return s.mustLookup(code)
	}
	return s.mustLookup(s.defaultCurrency)
}

// DetectFromMarket uses the exchange suffix of a ticker ("7203.T", "SHOP.TO").
// Crypto pairs such as "BTC-EUR" use their quote currency. Bare US tickers are USD.
func (s *CurrencyService) DetectFromMarket(ctx context.Context, ticker string) domain.Currency {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if i := strings.LastIndex(symbol, "."); i >= 0 && i < len(symbol)-1 {
		if code, ok := marketSuffixCurrency[symbol[i+1:]]; ok {
			return s.mustLookup(code)
		}
	}
	if i := strings.LastIndex(symbol, "-"); i >= 0 {
		if quote := symbol[i+1:]; s.registry.IsSupported(quote) {
			return s.mustLookup(quote)
		}
	}
	return s.mustLookup("USD")
}

// Format renders amount in the currency. An empty locale uses the currency's default locale.
func (s *CurrencyService) Format(ctx context.Context, amount float64, currencyCode, locale string) (string, error) {
	currency, err := s.registry.Lookup(currencyCode)
	if err != nil {
		return "", fmt.Errorf("failed to format amount: %w", err)
	}
	if locale == "" {
		locale = currency.Locale
	}
	return utils.FormatAmount(amount, currency, locale), nil
}

func (s *CurrencyService) FormatWithConversion(ctx context.Context, amount domain.CurrencyAmount, targetCurrency, locale string) (string, error) {
	original, err := s.registry.Lookup(amount.Currency)
	if err != nil {
		return "", fmt.Errorf("failed to format amount: %w", err)
	}
	target, err := s.registry.Lookup(targetCurrency)
	if err != nil {
		return "", fmt.Errorf("failed to format converted amount: %w", err)
	}
	if locale == "" {
		locale = original.Locale
	}
	return utils.FormatWithConversion(amount, original, target, locale), nil
}

// mustLookup is only called with codes known to be in the registry.
func (s *CurrencyService) mustLookup(code string) domain.Currency {
	currency, err := s.registry.Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("currency %s missing from registry", code))
	}
	return currency
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
