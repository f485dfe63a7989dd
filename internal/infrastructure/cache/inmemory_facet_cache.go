package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/retailops/backend/internal/domain/report"
)

// InMemoryFacetCache implements report.FacetCache inside the process.
// State is not shared across instances.
type InMemoryFacetCache struct {
	mu        sync.RWMutex
	facets    *report.Facets
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time

	// Stats for monitoring
	hits   int64
	misses int64
}

// NewInMemoryFacetCache creates a cache whose entries live for ttl
func NewInMemoryFacetCache(ttl time.Duration) *InMemoryFacetCache {
	return &InMemoryFacetCache{ttl: ttl, now: time.Now}
}

// Get returns the cached facets while they are fresh
func (c *InMemoryFacetCache) Get(_ context.Context) (*report.Facets, bool) {
	c.mu.RLock()
	facets, expiresAt := c.facets, c.expiresAt
	c.mu.RUnlock()

	if facets == nil || !c.now().Before(expiresAt) {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return facets, true
}

// Set replaces the cached facets
func (c *InMemoryFacetCache) Set(_ context.Context, facets *report.Facets) {
	if facets == nil {
		return
	}
	c.mu.Lock()
	c.facets = facets
	c.expiresAt = c.now().Add(c.ttl)
	c.mu.Unlock()
}

// Invalidate drops the cached facets
func (c *InMemoryFacetCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	c.facets = nil
	c.mu.Unlock()
}

// Stats returns the hit and miss counters
func (c *InMemoryFacetCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Ensure InMemoryFacetCache implements FacetCache
var _ report.FacetCache = (*InMemoryFacetCache)(nil)
