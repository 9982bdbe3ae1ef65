package middleware

import (
	"sync"
	"time"
)

// DefaultIdempotencyMaxEntries bounds the replay cache.
const DefaultIdempotencyMaxEntries = 10000

// IdempotencyCache stores responses of POST requests by idempotency key.
type IdempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewIdempotencyCache creates a cache and starts its cleanup loop.
// Call Stop to end the loop.
func NewIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	if maxEntries <= 0 {
		maxEntries = DefaultIdempotencyMaxEntries
	}
	c := &IdempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
	go c.startCleanup(cleanupInterval(ttl))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl > 0 && ttl < time.Minute {
		return ttl
	}
	return time.Minute
}

// Get retrieves a cached response that has not expired.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response. When the cache is full, expired entries are
// purged first and the oldest entry is evicted if none were.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.purgeExpiredLocked(time.Now())
		if len(c.items) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	resp.Timestamp = time.Now()
	c.items[key] = resp
}

// Len returns the number of stored responses, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes expired entries.
func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeExpiredLocked(time.Now())
}

func (c *IdempotencyCache) purgeExpiredLocked(now time.Time) {
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}

func (c *IdempotencyCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, resp := range c.items {
		if oldestKey == "" || resp.Timestamp.Before(oldest) {
			oldestKey, oldest = key, resp.Timestamp
		}
	}
	delete(c.items, oldestKey)
}
