package search

import (
	"sync"
	"time"
)

// cacheEntry holds a rendered result with its fetch time for TTL expiry.
type cacheEntry struct {
	rendered  string
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory cache of rendered search results,
// keyed by query. Expired entries are cleaned up lazily on Get; there is
// no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached rendering for a query if present and fresh.
func (c *Cache) Get(query string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[query]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Re-check under the write lock: a concurrent Set may have
		// replaced the entry with a fresh one in the meantime.
		c.mu.Lock()
		if current, ok := c.entries[query]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, query)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.rendered, true
}

// Set stores a rendered result with the current timestamp.
func (c *Cache) Set(query, rendered string) {
	c.mu.Lock()
	c.entries[query] = &cacheEntry{
		rendered:  rendered,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
