package utils

import (
	"strings"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// languages that conventionally write the symbol after the amount
var symbolAfterLanguages = map[string]bool{
	"de": true, "fr": true, "it": true, "ru": true, "pl": true, "cs": true, "sk": true,
	"sv": true, "nb": true, "nn": true, "da": true, "fi": true, "hu": true, "ro": true,
	"bg": true, "uk": true, "be": true, "el": true, "hr": true, "sl": true, "lt": true,
	"lv": true, "et": true, "is": true, "sr": true, "mk": true, "vi": true, "kk": true,
	"hy": true, "ka": true, "az": true,
}

// FormatWithCurrencyPrecision formats an amount with the minor units of its currency.
// Example: 12.3456 with USD (2 decimals) returns "12.35"
// Example: 12.3456 with JPY (0 decimals) returns "12"
func FormatWithCurrencyPrecision(amount float64, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.DecimalPlaces)
}

// FormatWithPrecision formats an amount with exactly precision decimals, rounding half away from zero.
func FormatWithPrecision(amount float64, precision int) string {
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatAmount renders amount for display in locale, e.g. "$1,234.56" for en-US
// or "1.234,56 €" for de-DE. An invalid or unknown locale falls back to FormatFallback.
func FormatAmount(amount float64, currency domain.Currency, locale string) string {
	tag, ok := parseLocale(locale)
	if !ok {
		return FormatFallback(amount, currency)
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(currency.DecimalPlaces))
	printer := message.NewPrinter(tag)
	digits := printer.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(currency.DecimalPlaces)))

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	if symbolAfter(tag) {
		b.WriteString(digits)
		b.WriteString(" ")
		b.WriteString(currency.Symbol)
	} else {
		b.WriteString(currency.Symbol)
		b.WriteString(digits)
	}
	return b.String()
}

// FormatFallback is the locale-independent rendering: symbol and two decimals, e.g. "$100.00".
func FormatFallback(amount float64, currency domain.Currency) string {
	d := decimal.NewFromFloat(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + currency.Symbol + d.Abs().StringFixed(2)
}

// FormatWithConversion renders the original amount, followed by the converted
// amount in parentheses when the currencies differ and a conversion is present.
func FormatWithConversion(amount domain.CurrencyAmount, original, target domain.Currency, locale string) string {
	formatted := FormatAmount(amount.Amount, original, locale)
	if original.CurrencyCode == target.CurrencyCode || amount.ConvertedAmount == nil {
		return formatted
	}
	return formatted + " (" + FormatAmount(*amount.ConvertedAmount, target, locale) + ")"
}

func parseLocale(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, false
	}
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	if _, conf := tag.Base(); conf == language.No {
		return language.Und, false
	}
	return tag, true
}

func symbolAfter(tag language.Tag) bool {
	base, _ := tag.Base()
	if base.String() == "es" {
		// Spain writes "1.234,56 €", Latin America "$1,234.56"
		region, _ := tag.Region()
		return region.String() == "ES"
	}
	return symbolAfterLanguages[base.String()]
}
