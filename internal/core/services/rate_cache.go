package services

import (
	"sync"
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// DefaultRateCacheTTL is the freshness window of a live rate.
const DefaultRateCacheTTL = 15 * time.Minute

// CacheEntry is one cached rate. Entries are replaced on refresh, never mutated.
type CacheEntry struct {
	Rate      domain.ExchangeRate
	ExpiresAt time.Time
}

// Fresh reports whether the entry is still inside its freshness window at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

type ratePair struct {
	from, to string
}

// RateCache is an in-memory store of live rates keyed by normalized currency pair.
// (A,B) and (B,A) are distinct entries. Expired entries are kept as stale
// fallbacks until InvalidateAll is called; there is no background sweeper.
type RateCache struct {
	mu          sync.RWMutex
	entries     map[ratePair]CacheEntry
	ttl         time.Duration
	now         func() time.Time
	lastUpdated time.Time
}

// RateCacheOption configures a RateCache.
type RateCacheOption func(*RateCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RateCacheOption {
	return func(c *RateCache) {
		c.now = now
	}
}

// NewRateCache creates an empty cache. A non-positive ttl selects DefaultRateCacheTTL.
func NewRateCache(ttl time.Duration, opts ...RateCacheOption) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateCacheTTL
	}
	c := &RateCache{
		entries: make(map[ratePair]CacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the cache clock's current time.
func (c *RateCache) Now() time.Time {
	return c.now()
}

// TTL returns the freshness window.
func (c *RateCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the entry for the pair whether it is fresh or stale.
func (c *RateCache) Get(from, to string) (CacheEntry, bool) {
	key := ratePair{domain.NormalizeCurrencyCode(from), domain.NormalizeCurrencyCode(to)}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Put stores a new entry for the pair, superseding any previous one.
func (c *RateCache) Put(from, to string, rate float64, source domain.RateSource) CacheEntry {
	key := ratePair{domain.NormalizeCurrencyCode(from), domain.NormalizeCurrencyCode(to)}
	now := c.now()
	entry := CacheEntry{
		Rate: domain.ExchangeRate{
			FromCurrencyCode: key.from,
			ToCurrencyCode:   key.to,
			Rate:             rate,
			Timestamp:        now,
			Source:           source,
		},
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
	c.lastUpdated = now
	return entry
}

// InvalidateAll drops every entry and resets the last update time.
func (c *RateCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[ratePair]CacheEntry)
	c.lastUpdated = time.Time{}
}

// Len returns the number of entries, fresh or stale.
func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Status reports when the cache was last written and when that write goes stale.
func (c *RateCache) Status() domain.CacheStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := domain.CacheStatus{
		Entries: len(c.entries),
		TTL:     c.ttl,
	}
	if !c.lastUpdated.IsZero() {
		last := c.lastUpdated
		next := last.Add(c.ttl)
		status.LastUpdated = &last
		status.NextUpdate = &next
	}
	return status
}
