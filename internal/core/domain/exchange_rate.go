package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
)

// RateSource tags the tier of the fallback chain that produced a rate.
type RateSource string

const (
	SourceInternal      RateSource = "internal"
	SourceCache         RateSource = "cache"
	SourceAPI           RateSource = "api"
	SourceStaleCache    RateSource = "stale-cache"
	SourceFallback      RateSource = "fallback"
	SourceMock          RateSource = "mock"
	SourceHistoricalAPI RateSource = "historical-api"
)

// Degraded is true for tiers that indicate rates may be delayed or approximate.
func (s RateSource) Degraded() bool {
	switch s {
	case SourceStaleCache, SourceFallback, SourceMock:
		return true
	}
	return false
}

// ExchangeRate is the rate to convert one unit of From into To.
type ExchangeRate struct {
	FromCurrencyCode string     `json:"fromCurrencyCode"`
	ToCurrencyCode   string     `json:"toCurrencyCode"`
	Rate             float64    `json:"rate"`
	Timestamp        time.Time  `json:"timestamp"`
	Source           RateSource `json:"source"`
}

// DateLayout is the calendar date format used for historical rates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// CivilDate truncates t to midnight UTC of its calendar day.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HistoricalExchangeRate is the rate for one calendar day.
type HistoricalExchangeRate struct {
	ExchangeRate
	Date string `json:"date"` // YYYY-MM-DD, UTC
}

// CacheStatus describes the state of the live rate cache.
type CacheStatus struct {
	LastUpdated *time.Time    `json:"lastUpdated,omitempty"`
	NextUpdate  *time.Time    `json:"nextUpdate,omitempty"`
	Entries     int           `json:"entries"`
	TTL         time.Duration `json:"ttl"`
}
