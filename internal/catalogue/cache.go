// Package catalogue provides a TTL-cached decorator over the catalogue and
// compatibility collaborator stores, so a periodic refresh job can re-warm
// the orchestrator's index without hitting Postgres on every call.
package catalogue

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

const (
	plantsCacheKey       = "catalogue:plants"
	compatibilityCacheKey = "catalogue:compatibility"

	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 15 * time.Minute
)

// Loader is the subset of the orchestrator's collaborator ports this cache
// decorates.
type Loader interface {
	ListAll(ctx context.Context) ([]*models.Plant, error)
	LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error)
}

// CachedStore wraps a Loader with an in-process TTL cache, avoiding a
// database round trip on every catalogue/compatibility reload.
type CachedStore struct {
	source Loader
	cache  *gocache.Cache
}

// NewCachedStore builds a CachedStore around source with the default TTL.
func NewCachedStore(source Loader) *CachedStore {
	return &CachedStore{
		source: source,
		cache:  gocache.New(defaultExpiration, cleanupInterval),
	}
}

// ListAll returns the cached plant catalogue, loading and caching it on a
// miss.
func (c *CachedStore) ListAll(ctx context.Context) ([]*models.Plant, error) {
	if cached, ok := c.cache.Get(plantsCacheKey); ok {
		return cached.([]*models.Plant), nil
	}
	plants, err := c.source.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(plantsCacheKey, plants, gocache.DefaultExpiration)
	return plants, nil
}

// LoadAll returns the cached compatibility entries, loading and caching
// them on a miss.
func (c *CachedStore) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	if cached, ok := c.cache.Get(compatibilityCacheKey); ok {
		return cached.([]models.CompatibilityEntry), nil
	}
	entries, err := c.source.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(compatibilityCacheKey, entries, gocache.DefaultExpiration)
	return entries, nil
}

// Invalidate clears the cached catalogue and compatibility entries,
// forcing the next call to reload from source.
func (c *CachedStore) Invalidate() {
	c.cache.Delete(plantsCacheKey)
	c.cache.Delete(compatibilityCacheKey)
}
