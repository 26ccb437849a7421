package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
	name string
}

func newMockRateProvider(name string) *MockRateProvider {
	return &MockRateProvider{name: name}
}

func (m *MockRateProvider) Name() string { return m.name }

func (m *MockRateProvider) FetchRate(ctx context.Context, from, to string) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

// --- Mock HistoricalRateProvider ---
type MockHistoricalRateProvider struct {
	MockRateProvider
	history bool
}

func newMockHistoricalRateProvider(name string, history bool) *MockHistoricalRateProvider {
	return &MockHistoricalRateProvider{MockRateProvider: MockRateProvider{name: name}, history: history}
}

func (m *MockHistoricalRateProvider) SupportsHistory() bool { return m.history }

func (m *MockHistoricalRateProvider) FetchHistoricalRate(ctx context.Context, from, to string, date time.Time) (float64, error) {
	args := m.Called(ctx, from, to, date)
	return args.Get(0).(float64), args.Error(1)
}

// testClock is a settable clock for cache expiry tests.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
