package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryFacetCache implements FacetCache with a process-local map.
// Suitable for single-instance deployments and tests.
type InMemoryFacetCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	now     func() time.Time
}

type inMemoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemoryFacetCache creates a new in-memory facet cache
func NewInMemoryFacetCache() *InMemoryFacetCache {
	return &InMemoryFacetCache{
		entries: make(map[string]inMemoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a cached payload
func (c *InMemoryFacetCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a payload with a TTL
func (c *InMemoryFacetCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := inMemoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Invalidate drops all cached payloads
func (c *InMemoryFacetCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]inMemoryEntry)
	c.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory cache
func (c *InMemoryFacetCache) Close() error {
	return nil
}

var _ FacetCache = (*InMemoryFacetCache)(nil)
