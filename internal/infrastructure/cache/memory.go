package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is a size-bounded in-process LRU with a fixed entry TTL
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryCache creates a cache holding at most size entries for ttl each
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := c.lru.Get(key)
	return val, ok, nil
}

// Set stores a value in the cache. The per-call ttl is ignored; entries
// expire after the TTL given to NewMemoryCache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.lru.Add(key, value)
	return nil
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}
