package domain

import "strings"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode  string    `json:"currencyCode"`  // ISO 4217 code (e.g., "USD")
	Symbol        string    `json:"symbol"`        // e.g., "$"
	Name          string    `json:"name"`          // e.g., "US Dollar"
	DecimalPlaces int       `json:"decimalPlaces"` // minor units, 0 for JPY
	Countries     []string  `json:"countries"`     // ISO 3166-1 alpha-2
	Locale        string    `json:"locale"`        // default display locale (BCP 47)
	Volatility    RiskLevel `json:"volatility"`    // indicative volatility class
}

// RiskLevel is a coarse low/medium/high classification used for risk and volatility.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var riskRank = map[RiskLevel]int{RiskLow: 1, RiskMedium: 2, RiskHigh: 3}

// Max returns the higher of two levels. Unknown levels rank lowest.
func (l RiskLevel) Max(other RiskLevel) RiskLevel {
	if riskRank[other] > riskRank[l] {
		return other
	}
	return l
}

// NormalizeCurrencyCode trims and uppercases a currency code. It does not validate it.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
