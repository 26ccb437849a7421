package providers

import (
	"context"
	"time"
)

// RateProvider fetches live exchange rates from a remote source.
type RateProvider interface {
	// Name identifies the provider in logs, metrics and rate limiting.
	Name() string

	// FetchRate returns the rate to convert one unit of from into to.
	FetchRate(ctx context.Context, from, to string) (float64, error)
}

// HistoricalRateProvider is a RateProvider that may also serve end-of-day rates.
type HistoricalRateProvider interface {
	RateProvider

	// SupportsHistory reports whether a historical endpoint is configured.
	SupportsHistory() bool

	// FetchHistoricalRate returns the rate for the calendar day of date.
	FetchHistoricalRate(ctx context.Context, from, to string, date time.Time) (float64, error)
}
