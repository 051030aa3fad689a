// Package cache wraps ristretto as a general-purpose local cache with a
// default TTL. Analysis results are pure functions of their input, so the
// server memoizes whole responses here.
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

type GeneralCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New creates a cache bounded by maxCost bytes with a default ttl per
// entry.
func New(maxCost int64, ttl time.Duration) (*GeneralCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &GeneralCache{cache: c, ttl: ttl}, nil
}

// Set stores a value under the default TTL.
func (c *GeneralCache) Set(key string, value any) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with an explicit TTL.
func (c *GeneralCache) SetWithTTL(key string, value any, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

// Get fetches a value.
func (c *GeneralCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Delete drops a key.
func (c *GeneralCache) Delete(key string) {
	c.cache.Del(key)
}

// Close releases the cache's resources.
func (c *GeneralCache) Close() {
	c.cache.Close()
}
