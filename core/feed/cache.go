package feed

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one reconciled feed with its build time.
type cacheEntry struct {
	feed  *SubscriptionsFeed
	built time.Time
	ttl   time.Duration
}

// isExpired returns true if this entry has expired based on its TTL.
func (e *cacheEntry) isExpired() bool {
	if e.ttl == 0 {
		return true // No caching
	}
	return time.Since(e.built) > e.ttl
}

// Cache stores reconciled feeds keyed by date and service. Feeds are only
// served for completed days, so within the TTL a rebuild could differ only
// if upstream rewrote history; the TTL bounds how long such a rewrite would
// go unnoticed.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	sf      singleflight.Group
}

// NewCache returns a cache reusing feeds for ttl. A non-positive ttl
// disables reuse and GetOrBuild always rebuilds.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

func cacheKey(date time.Time, serviceID string) string {
	return FormatDate(date) + "|" + serviceID
}

// GetOrBuild retrieves the feed for (date, serviceID) from the cache, or
// builds it with build if absent or expired. Concurrent builds of the same
// key collapse into a single flight; build errors are not cached.
func (c *Cache) GetOrBuild(date time.Time, serviceID string, build func() (*SubscriptionsFeed, error)) (*SubscriptionsFeed, error) {
	key := cacheKey(date, serviceID)

	// Fast path: fresh entry
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !entry.isExpired() {
		return entry.feed, nil
	}

	// Slow path: build under singleflight to prevent stampedes
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the flight
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !entry.isExpired() {
			return entry.feed, nil
		}

		feed, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{feed: feed, built: time.Now(), ttl: c.ttl}
		c.mu.Unlock()

		return feed, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*SubscriptionsFeed), nil
}

// Invalidate removes the feed for (date, serviceID) from the cache,
// forcing the next GetOrBuild to rebuild.
func (c *Cache) Invalidate(date time.Time, serviceID string) {
	key := cacheKey(date, serviceID)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
