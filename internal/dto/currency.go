package dto

import (
	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string   `json:"currencyCode"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	DecimalPlaces int      `json:"decimalPlaces"`
	Countries     []string `json:"countries"`
	Locale        string   `json:"locale"`
	Volatility    string   `json:"volatility"`
}

// FormatQuery holds the query parameters of a format request.
type FormatQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	Locale string   `form:"locale"`
}

// FormatWithConversionRequest defines the body of a format-with-conversion request.
// Without ExchangeRate and ConvertedAmount only the original amount is rendered.
type FormatWithConversionRequest struct {
	Amount          float64  `json:"amount"`
	Currency        string   `json:"currency" binding:"required,currencycode"`
	TargetCurrency  string   `json:"targetCurrency" binding:"required,currencycode"`
	ConvertedAmount *float64 `json:"convertedAmount"`
	ExchangeRate    *float64 `json:"exchangeRate"`
	Locale          string   `json:"locale"`
}

// FormatResponse carries a display string.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// ToCurrencyAmount converts the request to the domain amount. A rate without a
// converted amount is applied to the amount.
func (r FormatWithConversionRequest) ToCurrencyAmount() domain.CurrencyAmount {
	amount := domain.CurrencyAmount{
		Amount:          r.Amount,
		Currency:        r.Currency,
		ConvertedAmount: r.ConvertedAmount,
		ExchangeRate:    r.ExchangeRate,
	}
	if amount.ConvertedAmount == nil && r.ExchangeRate != nil {
		converted := r.Amount * *r.ExchangeRate
		amount.ConvertedAmount = &converted
	}
	return amount
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		DecimalPlaces: curr.DecimalPlaces,
		Countries:     curr.Countries,
		Locale:        curr.Locale,
		Volatility:    string(curr.Volatility),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}
