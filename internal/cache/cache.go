package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Backend is the raw key/value store behind the cache. Get returns
// (nil, nil) on a miss; DeleteByPattern removes every key matching a
// glob-style pattern and is a no-op when nothing matches.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Metrics receives hit/miss counts. Wired to prometheus in the app; tests
// leave it nil.
type Metrics interface {
	RecordCacheHit()
	RecordCacheMiss()
}

// Cache implements cache-aside get-or-compute over a Backend. A failing
// backend degrades reads to "always miss" and never fails the caller:
// the cache is an optimization, not a source of truth.
type Cache struct {
	backend    Backend
	defaultTTL time.Duration
	metrics    Metrics
}

func New(backend Backend, defaultTTL time.Duration) *Cache {
	return &Cache{backend: backend, defaultTTL: defaultTTL}
}

// WithMetrics attaches a hit/miss recorder.
func (c *Cache) WithMetrics(m Metrics) *Cache {
	c.metrics = m
	return c
}

// GetOrSet returns the cached value under key, or computes it via factory,
// stores it with ttl (the default TTL when ttl is 0) and returns it. Factory
// errors propagate and nothing is cached. Concurrent misses for the same key
// may all invoke factory; callers accept the stampede.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, factory func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := c.backend.Get(ctx, key)
	if err != nil {
		zap.L().Warn("cache get failed, treating as miss", zap.String("key", key), zap.Error(err))
	} else if raw != nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.recordHit()
			return cached, nil
		}
		zap.L().Warn("cache entry is not decodable, recomputing", zap.String("key", key))
	}
	c.recordMiss()

	value, err := factory(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("cache value is not encodable, skipping store", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.backend.Set(ctx, key, encoded, ttl); err != nil {
		zap.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// Remove deletes a single key; missing keys are not an error. Backend
// failures are logged, never returned, so writers are not blocked on the
// cache store.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.backend.Delete(ctx, key); err != nil {
		zap.L().Warn("cache remove failed", zap.String("key", key), zap.Error(err))
	}
}

// RemoveByPattern deletes every key matching a glob-style pattern, e.g.
// "stations:list:*" after a station write.
func (c *Cache) RemoveByPattern(ctx context.Context, pattern string) {
	if err := c.backend.DeleteByPattern(ctx, pattern); err != nil {
		zap.L().Warn("cache pattern remove failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

func (c *Cache) recordHit() {
	if c.metrics != nil {
		c.metrics.RecordCacheHit()
	}
}

func (c *Cache) recordMiss() {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss()
	}
}
