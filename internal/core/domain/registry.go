package domain

import (
	"fmt"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/money_fx_service/internal/apperrors"
)

// CurrencyRegistry holds the static metadata of all supported currencies.
// It is immutable after construction and safe for concurrent use.
type CurrencyRegistry struct {
	currencies map[string]Currency
	codes      []string
	byCountry  map[string]string
	perUSD     map[string]float64
}

// NewCurrencyRegistry builds the registry from the built-in table. Symbols and
// minor units come from the go-money catalogue when it knows the currency.
func NewCurrencyRegistry() *CurrencyRegistry {
	r := &CurrencyRegistry{
		currencies: make(map[string]Currency, len(registryData)),
		byCountry:  make(map[string]string),
		perUSD:     make(map[string]float64, len(registryData)),
	}
	for _, e := range registryData {
		c := Currency{
			CurrencyCode:  e.code,
			Symbol:        e.symbol,
			Name:          e.name,
			DecimalPlaces: e.decimals,
			Countries:     e.countries,
			Locale:        e.locale,
			Volatility:    e.volatility,
		}
		if mc := money.GetCurrency(e.code); mc != nil {
			if mc.Grapheme != "" {
				c.Symbol = mc.Grapheme
			}
			c.DecimalPlaces = mc.Fraction
		}
		if c.Locale == "" && len(c.Countries) > 0 {
			c.Locale = "en-" + c.Countries[0]
		}
		r.currencies[e.code] = c
		r.codes = append(r.codes, e.code)
		r.perUSD[e.code] = e.perUSD
		for _, country := range e.countries {
			if _, taken := r.byCountry[country]; !taken {
				r.byCountry[country] = e.code
			}
		}
	}
	sort.Strings(r.codes)
	return r
}

// Normalize trims and uppercases code and checks it is supported.
func (r *CurrencyRegistry) Normalize(code string) (string, error) {
	normalized := NormalizeCurrencyCode(code)
	if _, ok := r.currencies[normalized]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, code)
	}
	return normalized, nil
}

// Lookup returns the metadata of a supported currency.
func (r *CurrencyRegistry) Lookup(code string) (Currency, error) {
	normalized, err := r.Normalize(code)
	if err != nil {
		return Currency{}, err
	}
	return r.currencies[normalized], nil
}

// IsSupported reports whether code (in any case, untrimmed) is supported.
func (r *CurrencyRegistry) IsSupported(code string) bool {
	_, ok := r.currencies[NormalizeCurrencyCode(code)]
	return ok
}

// Codes returns all supported codes in ascending order.
func (r *CurrencyRegistry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// All returns every supported currency ordered by code.
func (r *CurrencyRegistry) All() []Currency {
	out := make([]Currency, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.currencies[code])
	}
	return out
}

// CurrencyForCountry returns the currency used in an ISO 3166-1 alpha-2 country.
func (r *CurrencyRegistry) CurrencyForCountry(country string) (string, bool) {
	code, ok := r.byCountry[NormalizeCurrencyCode(country)]
	return code, ok
}

// ApproximateRate returns a rough, static rate from -> to. It is always positive
// and finite; unknown codes count as parity with USD.
func (r *CurrencyRegistry) ApproximateRate(from, to string) float64 {
	fromPerUSD := r.perUSD[NormalizeCurrencyCode(from)]
	toPerUSD := r.perUSD[NormalizeCurrencyCode(to)]
	if fromPerUSD <= 0 {
		fromPerUSD = 1
	}
	if toPerUSD <= 0 {
		toPerUSD = 1
	}
	return toPerUSD / fromPerUSD
}
