package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/retailops/backend/internal/domain/report"
	"go.uber.org/zap"
)

// facetCacheKey is the Redis key holding the encoded facets
const facetCacheKey = "sales_report:facets"

// RedisFacetCache implements report.FacetCache using Redis, so every instance
// of the service sees the same facets until the TTL expires.
type RedisFacetCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisFacetCacheOption is a functional option for configuring the cache
type RedisFacetCacheOption func(*RedisFacetCache)

// WithRedisLogger sets the logger for the cache
func WithRedisLogger(logger *zap.Logger) RedisFacetCacheOption {
	return func(c *RedisFacetCache) {
		c.logger = logger
	}
}

// NewRedisFacetCache connects to Redis and verifies the connection
func NewRedisFacetCache(addr, password string, db int, ttl time.Duration, opts ...RedisFacetCacheOption) (*RedisFacetCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := NewRedisFacetCacheWithClient(client, ttl, opts...)
	c.ownsClient = true
	return c, nil
}

// NewRedisFacetCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client.
func NewRedisFacetCacheWithClient(client *redis.Client, ttl time.Duration, opts ...RedisFacetCacheOption) *RedisFacetCache {
	c := &RedisFacetCache{
		client: client,
		ttl:    ttl,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached facets. Redis failures count as a miss.
func (c *RedisFacetCache) Get(ctx context.Context) (*report.Facets, bool) {
	data, err := c.client.Get(ctx, facetCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Failed to read facets from cache", zap.Error(err))
		}
		return nil, false
	}

	var facets report.Facets
	if err := json.Unmarshal(data, &facets); err != nil {
		c.logger.Error("Failed to unmarshal cached facets", zap.Error(err))
		// Delete corrupted cache entry
		_ = c.client.Del(ctx, facetCacheKey)
		return nil, false
	}

	c.logger.Debug("Cache hit for report facets")
	return &facets, true
}

// Set stores the facets for the configured TTL
func (c *RedisFacetCache) Set(ctx context.Context, facets *report.Facets) {
	if facets == nil {
		return
	}

	data, err := json.Marshal(facets)
	if err != nil {
		c.logger.Error("Failed to marshal facets", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, facetCacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to store facets in cache", zap.Error(err))
		return
	}

	c.logger.Debug("Cached report facets", zap.Duration("ttl", c.ttl))
}

// Invalidate drops the cached facets
func (c *RedisFacetCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, facetCacheKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cached facets", zap.Error(err))
	}
}

// Close releases the client if the cache created it
func (c *RedisFacetCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisFacetCache implements FacetCache
var _ report.FacetCache = (*RedisFacetCache)(nil)
