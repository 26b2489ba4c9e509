package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"folio/internal/domain/service"
	"folio/internal/errors"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache is a process-local fallback used when Redis is not configured.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache returns an in-process cache. Values round-trip through JSON
// so callers observe the same semantics as the Redis backend.
func NewMemoryCache() service.Cache {
	return newMemoryCache(time.Now)
}

func newMemoryCache(now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.value, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cache key %s", key)
	}

	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode cache key %s", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()
	c.entries[key] = memoryEntry{value: raw, expiresAt: c.now().Add(ttl)}

	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// evictExpired must be called with mu held.
func (c *memoryCache) evictExpired() {
	now := c.now()
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
