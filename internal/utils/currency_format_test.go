package utils

import (
	"strings"
	"testing"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, code string) domain.Currency {
	t.Helper()
	c, err := domain.NewCurrencyRegistry().Lookup(code)
	require.NoError(t, err)
	return c
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(12.3456, lookup(t, "USD")))
	assert.Equal(t, "12", FormatWithCurrencyPrecision(12.3456, lookup(t, "JPY")))
	assert.Equal(t, "1.235", FormatWithCurrencyPrecision(1.23456, lookup(t, "KWD")))
	assert.Equal(t, "-0.50", FormatWithPrecision(-0.5, 2))
}

func TestFormatAmount(t *testing.T) {
	usd := lookup(t, "USD")

	assert.Equal(t, "$1,234.56", FormatAmount(1234.56, usd, "en-US"))
	assert.Equal(t, "$0.10", FormatAmount(0.1, usd, "en-US"))
	assert.Equal(t, "-$42.50", FormatAmount(-42.5, usd, "en-US"))

	// German puts the symbol after the amount
	assert.Equal(t, "1.234,56 €", FormatAmount(1234.56, lookup(t, "EUR"), "de-DE"))
}

func TestFormatAmount_ZeroDecimalCurrency(t *testing.T) {
	formatted := FormatAmount(1234, lookup(t, "JPY"), "ja-JP")
	assert.True(t, strings.HasPrefix(formatted, "¥"), formatted)
	assert.NotContains(t, formatted, ".")
	assert.Contains(t, formatted, "1,234")
}

func TestFormatAmount_ThreeDecimalCurrency(t *testing.T) {
	kwd := lookup(t, "KWD")
	formatted := FormatAmount(1234.5, kwd, "en-US")
	assert.Equal(t, kwd.Symbol+"1,234.500", formatted)
}

func TestFormatAmount_SpanishRegions(t *testing.T) {
	eur := lookup(t, "EUR")
	assert.True(t, strings.HasSuffix(FormatAmount(10, eur, "es-ES"), " €"))
	assert.True(t, strings.HasPrefix(FormatAmount(10, lookup(t, "MXN"), "es-MX"), "$"))
}

func TestFormatAmount_InvalidLocaleFallsBack(t *testing.T) {
	usd := lookup(t, "USD")
	for _, locale := range []string{"", "   ", "not a locale!!", "und"} {
		assert.Equal(t, "$100.00", FormatAmount(100, usd, locale), "locale %q", locale)
	}
	assert.Equal(t, "-$3.10", FormatFallback(-3.1, usd))
}

func TestFormatWithConversion(t *testing.T) {
	usd := lookup(t, "USD")
	eur := lookup(t, "EUR")
	converted := 92.0
	rate := 0.92

	amount := domain.CurrencyAmount{Amount: 100, Currency: "USD", ConvertedAmount: &converted, ExchangeRate: &rate}
	assert.Equal(t, "$100.00 (€92.00)", FormatWithConversion(amount, usd, eur, "en-US"))

	// nothing to show without a conversion or for the same currency
	plain := domain.CurrencyAmount{Amount: 100, Currency: "USD"}
	assert.Equal(t, "$100.00", FormatWithConversion(plain, usd, eur, "en-US"))
	assert.Equal(t, "$100.00", FormatWithConversion(amount, usd, usd, "en-US"))
}
