package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	text      string
	expiresAt time.Time // zero means never
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// InMemoryCache keeps translations in process memory with an optional TTL.
// It is safe for concurrent use.
type InMemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryCache creates a cache whose entries live for ttlSeconds.
// Non-positive values disable expiration.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached translation for key. Expired entries are dropped.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if entry.expired(c.now()) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if current, ok := c.entries[key]; ok && current.expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}
	return entry.text, true
}

// Set stores a translation under key.
func (c *InMemoryCache) Set(key string, value string) error {
	entry := memoryEntry{text: value}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge removes expired entries and returns how many were dropped.
func (c *InMemoryCache) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// StartJanitor purges expired entries every interval until the returned
// stop function is called. Stop may be called more than once.
func (c *InMemoryCache) StartJanitor(interval time.Duration) (stop func()) {
	if c.ttl <= 0 || interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.Purge()
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// janitorInterval follows the TTL, bounded to [1s, 1m].
func janitorInterval(ttlSeconds int) time.Duration {
	interval := time.Duration(ttlSeconds) * time.Second
	switch {
	case interval < time.Second:
		return time.Second
	case interval > time.Minute:
		return time.Minute
	}
	return interval
}

// Verify InMemoryCache implements TranslationCache
var _ TranslationCache = (*InMemoryCache)(nil)
