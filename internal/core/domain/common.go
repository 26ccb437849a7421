package domain

import "time"

// CurrencyAmount is an amount in a currency, optionally carrying the result of a conversion.
// ConvertedAmount is only set together with ExchangeRate.
type CurrencyAmount struct {
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	ConvertedAmount *float64   `json:"convertedAmount,omitempty"`
	ExchangeRate    *float64   `json:"exchangeRate,omitempty"`
	LastUpdated     *time.Time `json:"lastUpdated,omitempty"`
}

// WithConversion returns a copy of the amount carrying the converted value produced by rate.
func (a CurrencyAmount) WithConversion(rate ExchangeRate) CurrencyAmount {
	converted := a.Amount * rate.Rate
	r := rate.Rate
	ts := rate.Timestamp
	a.ConvertedAmount = &converted
	a.ExchangeRate = &r
	a.LastUpdated = &ts
	return a
}

// Conversion is the result of converting a CurrencyAmount into TargetCurrency.
type Conversion struct {
	CurrencyAmount
	TargetCurrency string     `json:"targetCurrency"`
	Source         RateSource `json:"source"`
	// Error is only set on batch entries that could not be converted.
	Error string `json:"error,omitempty"`
}

// Degraded reports whether the rate behind the conversion came from a degraded tier.
func (c Conversion) Degraded() bool {
	return c.Source.Degraded()
}

// ConversionRequest is one entry of a batch conversion.
type ConversionRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}
