package summary

import (
	"sync"
	"time"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

type cacheEntry struct {
	summary   model.CitySummary
	expiresAt time.Time
}

// Cache holds generated summaries keyed by city for a fixed TTL. Entries
// expire lazily on read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached summary for a city if present and not expired.
// Expired entries are removed on access.
func (c *Cache) Get(city string) (model.CitySummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[city]
	if !ok {
		return model.CitySummary{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, city)
		return model.CitySummary{}, false
	}
	return entry.summary, true
}

// Set stores a summary for a city, replacing any previous entry.
func (c *Cache) Set(city string, summary model.CitySummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[city] = cacheEntry{
		summary:   summary,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len reports the number of live entries, pruning expired ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for city, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, city)
		}
	}
	return len(c.entries)
}
