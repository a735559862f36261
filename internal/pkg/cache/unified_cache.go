package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
}

// UnifiedCache is a typed view over a go-cache instance.
type UnifiedCache[T any] struct {
	store  *gocache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64
}

// NewUnifiedCache creates a cache whose entries expire after ttl. Expired
// entries are swept twice per ttl period.
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnifiedCache[T]{
		store:  gocache.New(ttl, ttl/2),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
}

// OnEvicted registers fn to run whenever an entry is removed by expiry or
// Delete. fn runs outside the cache lock.
func (c *UnifiedCache[T]) OnEvicted(fn func(key string, value T)) {
	c.store.OnEvicted(func(key string, v interface{}) {
		c.evictions.Add(1)
		c.logger.Debug("Cache evicted",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		if value, ok := v.(T); ok {
			fn(key, value)
		}
	})
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Add stores value only if key is absent or expired. It reports whether
// the value was stored.
func (c *UnifiedCache[T]) Add(key string, value T) bool {
	if err := c.store.Add(key, value, gocache.DefaultExpiration); err != nil {
		return false
	}
	c.sets.Add(1)
	return true
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	v, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		var zero T
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	value, ok := v.(T)
	if !ok {
		c.misses.Add(1)
		var zero T
		return zero, false
	}

	c.hits.Add(1)
	return value, true
}

// Touch resets the expiry of an existing entry.
func (c *UnifiedCache[T]) Touch(key string) bool {
	v, found := c.store.Get(key)
	if !found {
		return false
	}
	c.store.Set(key, v, gocache.DefaultExpiration)
	return true
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache. Unlike Delete it does not run
// the eviction callback.
func (c *UnifiedCache[T]) Clear() {
	c.store.Flush()
	c.logger.Info("Cache cleared", zap.String("cache", c.name))
}

// Items returns a snapshot of the live entries.
func (c *UnifiedCache[T]) Items() map[string]T {
	out := make(map[string]T)
	for k, item := range c.store.Items() {
		if v, ok := item.Object.(T); ok {
			out[k] = v
		}
	}
	return out
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Size returns the number of items in the cache, expired ones included
// until the next sweep.
func (c *UnifiedCache[T]) Size() int {
	return c.store.ItemCount()
}
