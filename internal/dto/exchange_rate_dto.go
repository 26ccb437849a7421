package dto

import (
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// HistoryQuery holds the date range of a history request (YYYY-MM-DD, inclusive).
type HistoryQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	Rate             float64   `json:"rate"`
	Timestamp        time.Time `json:"timestamp"`
	Source           string    `json:"source"`
	Degraded         bool      `json:"degraded"`
}

// HistoricalRateResponse is one day of a rate history.
type HistoricalRateResponse struct {
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
	Source   string  `json:"source"`
	Degraded bool    `json:"degraded"`
}

// HistoryResponse wraps a rate history.
type HistoryResponse struct {
	FromCurrencyCode string                   `json:"fromCurrencyCode"`
	ToCurrencyCode   string                   `json:"toCurrencyCode"`
	Rates            []HistoricalRateResponse `json:"rates"`
	Degraded         bool                     `json:"degraded"`
}

// CacheStatusResponse describes the live rate cache.
type CacheStatusResponse struct {
	LastUpdated *time.Time `json:"lastUpdated"`
	NextUpdate  *time.Time `json:"nextUpdate"`
	Entries     int        `json:"entries"`
	TTLSeconds  float64    `json:"ttlSeconds"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		Timestamp:        rate.Timestamp,
		Source:           string(rate.Source),
		Degraded:         rate.Source.Degraded(),
	}
}

// ToHistoryResponse converts a daily series. from and to are the normalized request codes.
func ToHistoryResponse(from, to string, rates []domain.HistoricalExchangeRate) HistoryResponse {
	res := HistoryResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rates:            make([]HistoricalRateResponse, len(rates)),
	}
	for i, r := range rates {
		res.Rates[i] = HistoricalRateResponse{
			Date:     r.Date,
			Rate:     r.Rate,
			Source:   string(r.Source),
			Degraded: r.Source.Degraded(),
		}
		res.Degraded = res.Degraded || res.Rates[i].Degraded
	}
	return res
}

func ToCacheStatusResponse(status domain.CacheStatus) CacheStatusResponse {
	return CacheStatusResponse{
		LastUpdated: status.LastUpdated,
		NextUpdate:  status.NextUpdate,
		Entries:     status.Entries,
		TTLSeconds:  status.TTL.Seconds(),
	}
}
