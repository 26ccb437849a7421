package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCache_FreshThenStale(t *testing.T) {
	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := services.NewRateCache(15*time.Minute, services.WithClock(clock.Now))

	cache.Put("usd", "eur", 0.9, domain.SourceAPI)
	entry, ok := cache.Get("USD", "EUR")
	require.True(t, ok)
	assert.Equal(t, "USD", entry.Rate.FromCurrencyCode)
	assert.True(t, entry.Fresh(cache.Now()))

	clock.Advance(14*time.Minute + 59*time.Second)
	entry, _ = cache.Get("USD", "EUR")
	assert.True(t, entry.Fresh(cache.Now()))

	clock.Advance(time.Second)
	entry, ok = cache.Get("USD", "EUR")
	require.True(t, ok, "expired entries stay available as stale fallbacks")
	assert.False(t, entry.Fresh(cache.Now()))
}

func TestRateCache_PairsAreDirectional(t *testing.T) {
	cache := services.NewRateCache(0)
	assert.Equal(t, services.DefaultRateCacheTTL, cache.TTL())

	cache.Put("USD", "EUR", 0.9, domain.SourceAPI)
	_, ok := cache.Get("EUR", "USD")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestRateCache_PutReplacesEntry(t *testing.T) {
	cache := services.NewRateCache(time.Minute)
	cache.Put("USD", "EUR", 0.9, domain.SourceAPI)
	cache.Put("USD", "EUR", 0.95, domain.SourceAPI)

	entry, ok := cache.Get("USD", "EUR")
	require.True(t, ok)
	assert.Equal(t, 0.95, entry.Rate.Rate)
	assert.Equal(t, 1, cache.Len())
}

func TestRateCache_StatusAndInvalidate(t *testing.T) {
	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := services.NewRateCache(15*time.Minute, services.WithClock(clock.Now))

	status := cache.Status()
	assert.Nil(t, status.LastUpdated)
	assert.Nil(t, status.NextUpdate)

	cache.Put("USD", "JPY", 150, domain.SourceAPI)
	status = cache.Status()
	require.NotNil(t, status.LastUpdated)
	require.NotNil(t, status.NextUpdate)
	assert.Equal(t, clock.now, *status.LastUpdated)
	assert.Equal(t, clock.now.Add(15*time.Minute), *status.NextUpdate)
	assert.Equal(t, 1, status.Entries)

	cache.InvalidateAll()
	status = cache.Status()
	assert.Zero(t, status.Entries)
	assert.Nil(t, status.LastUpdated)
	_, ok := cache.Get("USD", "JPY")
	assert.False(t, ok)
}

func TestRateCache_ConcurrentAccess(t *testing.T) {
	cache := services.NewRateCache(time.Minute)
	codes := []string{"USD", "EUR", "GBP", "JPY"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := codes[i%len(codes)], codes[(i+1)%len(codes)]
			cache.Put(from, to, float64(i+1), domain.SourceAPI)
			_, _ = cache.Get(to, from)
			_ = cache.Status()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(codes), cache.Len())
	for i := range codes {
		entry, ok := cache.Get(codes[i], codes[(i+1)%len(codes)])
		require.True(t, ok)
		assert.Greater(t, entry.Rate.Rate, 0.0)
	}
}
