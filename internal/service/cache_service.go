package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"festival-scoreboard/pkg/metrics"
	"festival-scoreboard/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cached views, used as metric labels
const (
	ViewTeams        = "teams"
	ViewEvents       = "events"
	ViewCategories   = "categories"
	ViewStandings    = "standings"
	ViewEventResults = "event_results"
)

// CacheService caches derived views in Redis with a cache-aside pattern.
//
// Keys carry an in-process generation number. Invalidate bumps the generation
// before deleting, so a read that loaded data before a write can only store it
// under a generation nobody reads anymore. A nil *CacheService always loads.
type CacheService struct {
	redis      *redis.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
	generation atomic.Uint64
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger, m *metrics.Metrics) *CacheService {
	return &CacheService{
		redis:   redisClient,
		logger:  logger,
		metrics: m,
	}
}

// Keys returns the key builder of the underlying client
func (c *CacheService) Keys() *redis.KeyBuilder {
	return c.redis.KeyBuilder
}

// Generation returns the current key generation
func (c *CacheService) Generation() uint64 {
	return c.generation.Load()
}

func (c *CacheService) versioned(key string) string {
	return fmt.Sprintf("%s:g%d", key, c.generation.Load())
}

// getOrLoad returns the cached value under key, or calls load and caches its result
func getOrLoad[T any](ctx context.Context, c *CacheService, view, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	cacheKey := c.versioned(key)
	cachedData, err := c.redis.Get(ctx, cacheKey)
	if err == nil && cachedData != "" {
		var value T
		if unmarshalErr := json.Unmarshal([]byte(cachedData), &value); unmarshalErr == nil {
			c.metrics.RecordCacheLookup(view, metrics.OutcomeHit)
			return value, nil
		} else {
			c.logger.Warn("Cache entry corrupted, recomputing",
				zap.String("view", view),
				zap.Error(unmarshalErr))
		}
	} else if err != nil && err != goredis.Nil {
		c.logger.Warn("Cache error, recomputing",
			zap.String("view", view),
			zap.Error(err))
	}

	c.metrics.RecordCacheLookup(view, metrics.OutcomeMiss)
	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Failed to marshal view for caching", zap.String("view", view), zap.Error(err))
		return value, nil
	}
	if err := c.redis.Set(ctx, cacheKey, string(data), ttl); err != nil {
		c.logger.Warn("Failed to cache view", zap.String("view", view), zap.Error(err))
	}
	return value, nil
}

// Invalidate drops every cached view. It must run after each mutating write.
func (c *CacheService) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	gen := c.generation.Add(1)

	pattern := c.redis.KeyBuilder.BuildKey("scoreboard:*")
	if err := c.redis.InvalidatePattern(ctx, pattern); err != nil {
		// stale generations are unreachable anyway; this only frees memory early
		c.logger.Warn("Failed to delete stale cache keys", zap.String("pattern", pattern), zap.Error(err))
	}

	c.logger.Debug("Scoreboard caches invalidated", zap.Uint64("generation", gen))
}

// HealthCheck performs a health check on the cache system
func (c *CacheService) HealthCheck(ctx context.Context) error {
	if c == nil {
		return nil
	}
	start := time.Now()
	err := c.redis.Health(ctx)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error("Cache health check failed",
			zap.Duration("duration", duration),
			zap.Error(err))
		return err
	}

	c.logger.Debug("Cache health check passed", zap.Duration("duration", duration))
	return nil
}
