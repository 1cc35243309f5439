package weather

import (
	"sync"
	"time"

	"alcyxob/workout-planner/internal/domain"
)

// Resolution says which forecast endpoint, if any, serves a (date, slot)
// pair.
type Resolution int

const (
	// ResolutionNone: no weather is shown for this date/slot.
	ResolutionNone Resolution = iota
	// ResolutionHourly: slot-level summary from the hourly endpoint.
	ResolutionHourly
	// ResolutionDaily: a single daily value, surfaced in the morning slot
	// only so the same number is not repeated three times per day.
	ResolutionDaily
)

// Decide picks the forecast resolution for a calendar cell. Weather is only
// requested for the three daytime slots, never for past dates, and only
// within the provider's 16-day horizon. Dates 8-16 days out have daily data
// only.
func Decide(today, day domain.DateOnly, slot domain.TimeOfDay) Resolution {
	switch slot {
	case domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening:
	default:
		return ResolutionNone
	}

	ahead := today.DaysUntil(day)
	switch {
	case ahead < 0 || ahead > MaxDailyForecastDays:
		return ResolutionNone
	case ahead <= MaxHourlyForecastDays:
		return ResolutionHourly
	case slot == domain.TimeMorning:
		return ResolutionDaily
	default:
		return ResolutionNone
	}
}

// DefaultCacheTTL matches the client-side staleness poll interval.
const DefaultCacheTTL = 5 * time.Minute

type cacheKey struct {
	date string
	slot domain.TimeOfDay
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Cache is a small expiring key-value store keyed by (date, slot). Entries
// older than the TTL are treated as absent.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache with the given TTL (DefaultCacheTTL when zero).
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached value for (date, slot) if it is still fresh.
func (c *Cache) Get(day domain.DateOnly, slot domain.TimeOfDay) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{date: day.String(), slot: slot}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores a value for (date, slot) with a fresh TTL.
func (c *Cache) Set(day domain.DateOnly, slot domain.TimeOfDay, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{date: day.String(), slot: slot}] = cacheEntry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}
