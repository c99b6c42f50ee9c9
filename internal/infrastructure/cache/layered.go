package cache

import (
	"context"
	"errors"
	"time"
)

// LayeredCache checks layers in order and promotes hits into the layers above
type LayeredCache struct {
	layers []Cache
}

// NewLayeredCache creates a cache over layers, fastest first
func NewLayeredCache(layers ...Cache) *LayeredCache {
	return &LayeredCache{layers: layers}
}

// Get returns the first hit. A failing layer is skipped and its error is
// reported only when no layer had the key.
func (c *LayeredCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var errs []error
	for i, layer := range c.layers {
		val, found, err := layer.Get(ctx, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !found {
			continue
		}
		for _, upper := range c.layers[:i] {
			_ = upper.Set(ctx, key, val, 0)
		}
		return val, true, nil
	}
	return nil, false, errors.Join(errs...)
}

// Set stores the value in every layer
func (c *LayeredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var errs []error
	for _, layer := range c.layers {
		if err := layer.Set(ctx, key, value, ttl); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
