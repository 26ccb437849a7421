package dto

import (
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// ConvertQuery holds the query parameters of a single conversion.
type ConvertQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	From   string   `form:"from" binding:"required,currencycode"`
	To     string   `form:"to" binding:"required,currencycode"`
}

// ConversionItem is one entry of a batch conversion request. Codes are validated
// per entry by the service so one bad entry does not fail the batch.
type ConversionItem struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// BatchConvertRequest defines the body of a batch conversion.
type BatchConvertRequest struct {
	Conversions []ConversionItem `json:"conversions" binding:"required,min=1,max=500,dive"`
}

// ConversionResponse defines the structure of one conversion result.
type ConversionResponse struct {
	Amount          float64    `json:"amount"`
	FromCurrency    string     `json:"fromCurrency"`
	ToCurrency      string     `json:"toCurrency"`
	ConvertedAmount *float64   `json:"convertedAmount,omitempty"`
	ExchangeRate    *float64   `json:"exchangeRate,omitempty"`
	LastUpdated     *time.Time `json:"lastUpdated,omitempty"`
	Source          string     `json:"source,omitempty"`
	Degraded        bool       `json:"degraded"`
	Error           string     `json:"error,omitempty"`
}

// BatchConvertResponse keeps results in request order.
type BatchConvertResponse struct {
	Results  []ConversionResponse `json:"results"`
	Degraded bool                 `json:"degraded"`
}

// ToConversionRequests converts batch items to domain requests.
func (r BatchConvertRequest) ToConversionRequests() []domain.ConversionRequest {
	out := make([]domain.ConversionRequest, len(r.Conversions))
	for i, item := range r.Conversions {
		out[i] = domain.ConversionRequest{Amount: item.Amount, From: item.From, To: item.To}
	}
	return out
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(conv domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:          conv.Amount,
		FromCurrency:    conv.Currency,
		ToCurrency:      conv.TargetCurrency,
		ConvertedAmount: conv.ConvertedAmount,
		ExchangeRate:    conv.ExchangeRate,
		LastUpdated:     conv.LastUpdated,
		Source:          string(conv.Source),
		Degraded:        conv.Degraded(),
		Error:           conv.Error,
	}
}

// ToBatchConvertResponse converts batch results, flagging the batch degraded if any entry is.
func ToBatchConvertResponse(convs []domain.Conversion) BatchConvertResponse {
	res := BatchConvertResponse{Results: make([]ConversionResponse, len(convs))}
	for i, conv := range convs {
		res.Results[i] = ToConversionResponse(conv)
		res.Degraded = res.Degraded || res.Results[i].Degraded
	}
	return res
}
