package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testFacets() *report.Facets {
	return &report.Facets{
		Categories: []string{"Rings"},
		Brands:     []string{"Acme"},
		Genders:    []string{},
		Materials:  []string{"Gold"},
		IsGold:     []string{"true"},
	}
}

// unreachableRedis points at a port nothing listens on
var unreachableRedis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

func TestInMemoryFacetCache_GetSet(t *testing.T) {
	c := NewInMemoryFacetCache(time.Minute)
	ctx := context.Background()

	facets, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, facets)

	c.Set(ctx, testFacets())
	facets, ok = c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Acme"}, facets.Brands)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestInMemoryFacetCache_Expiry(t *testing.T) {
	c := NewInMemoryFacetCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	c.Set(ctx, testFacets())

	now = now.Add(59 * time.Second)
	_, ok := c.Get(ctx)
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestInMemoryFacetCache_Invalidate(t *testing.T) {
	c := NewInMemoryFacetCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, testFacets())
	c.Invalidate(ctx)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestInMemoryFacetCache_SetNilIsNoop(t *testing.T) {
	c := NewInMemoryFacetCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, testFacets())
	c.Set(ctx, nil)

	_, ok := c.Get(ctx)
	assert.True(t, ok)
}

func TestRedisFacetCache_UnreachableIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        unreachableRedis.Addr(),
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	c := NewRedisFacetCacheWithClient(client, time.Minute, WithRedisLogger(zap.New(core)))
	ctx := context.Background()

	c.Set(ctx, testFacets())
	facets, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, facets)

	assert.Equal(t, 1, logs.FilterMessage("Failed to store facets in cache").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to read facets from cache").Len())

	// The caller owns the client
	assert.NoError(t, c.Close())
}

func TestFacetCacheFactory_CreateCache(t *testing.T) {
	t.Run("zero TTL disables caching", func(t *testing.T) {
		f := NewFacetCacheFactory(config.RedisConfig{}, config.ReportConfig{})
		c, err := f.CreateCache()
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("no redis host uses in-memory", func(t *testing.T) {
		f := NewFacetCacheFactory(config.RedisConfig{}, config.ReportConfig{FacetCacheTTL: time.Minute})
		c, err := f.CreateCache()
		require.NoError(t, err)
		assert.IsType(t, &InMemoryFacetCache{}, c)
	})

	t.Run("falls back when redis is unreachable", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		f := NewFacetCacheFactory(unreachableRedis, config.ReportConfig{FacetCacheTTL: time.Minute},
			WithLogger(zap.New(core)))
		c, err := f.CreateCache()
		require.NoError(t, err)
		assert.IsType(t, &InMemoryFacetCache{}, c)
		assert.Equal(t, 1, logs.FilterMessage("Redis unavailable, falling back to in-memory facet cache").Len())
	})

	t.Run("fails when fallback is disabled", func(t *testing.T) {
		f := NewFacetCacheFactory(unreachableRedis, config.ReportConfig{FacetCacheTTL: time.Minute},
			WithInMemoryFallback(false))
		c, err := f.CreateCache()
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}
