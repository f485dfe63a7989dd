package cache

import (
	"fmt"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// FacetCacheFactory creates facet caches based on configuration
type FacetCacheFactory struct {
	redisConfig           config.RedisConfig
	reportConfig          config.ReportConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FacetCacheFactoryOption is a functional option for configuring the factory
type FacetCacheFactoryOption func(*FacetCacheFactory)

// WithLogger sets the logger for the factory and the caches it creates
func WithLogger(logger *zap.Logger) FacetCacheFactoryOption {
	return func(f *FacetCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is configured but unreachable. Default is true.
func WithInMemoryFallback(allow bool) FacetCacheFactoryOption {
	return func(f *FacetCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewFacetCacheFactory creates a new factory
func NewFacetCacheFactory(redisCfg config.RedisConfig, reportCfg config.ReportConfig, opts ...FacetCacheFactoryOption) *FacetCacheFactory {
	f := &FacetCacheFactory{
		redisConfig:           redisCfg,
		reportConfig:          reportCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed facet cache
func (f *FacetCacheFactory) CreateRedisCache() (*RedisFacetCache, error) {
	addr := f.redisConfig.Addr()
	if addr == "" {
		return nil, fmt.Errorf("redis host is not configured")
	}
	c, err := NewRedisFacetCache(addr, f.redisConfig.Password, f.redisConfig.DB,
		f.reportConfig.FacetCacheTTL, WithRedisLogger(f.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis facet cache: %w", err)
	}
	return c, nil
}

// CreateInMemoryCache creates a process-local facet cache
func (f *FacetCacheFactory) CreateInMemoryCache() *InMemoryFacetCache {
	return NewInMemoryFacetCache(f.reportConfig.FacetCacheTTL)
}

// CreateCache picks the cache tier. A zero TTL disables caching and returns
// nil. Without a Redis host the in-memory cache is used; with one, Redis is
// tried first and the in-memory cache is the fallback when allowed.
func (f *FacetCacheFactory) CreateCache() (report.FacetCache, error) {
	if f.reportConfig.FacetCacheTTL <= 0 {
		f.logger.Info("facet cache disabled")
		return nil, nil
	}

	if f.redisConfig.Addr() == "" {
		f.logger.Info("using in-memory facet cache")
		return f.CreateInMemoryCache(), nil
	}

	c, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis facet cache", zap.String("addr", f.redisConfig.Addr()))
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for facet cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory facet cache", zap.Error(err))
	return f.CreateInMemoryCache(), nil
}
