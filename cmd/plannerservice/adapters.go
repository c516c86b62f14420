package main

import (
	"context"

	"github.com/urban-gardening-assistant/planner-engine/internal/catalogue"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/store"
)

// compositeLoader adapts the separate catalogue/compatibility Postgres
// stores to the single catalogue.Loader interface the TTL cache expects.
type compositeLoader struct {
	catalogue     *store.CatalogueStore
	compatibility *store.CompatibilityStore
}

func (c compositeLoader) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return c.catalogue.ListAll(ctx)
}

func (c compositeLoader) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	return c.compatibility.LoadAll(ctx)
}

// catalogueAdapter satisfies orchestrator.CatalogueStore: ListAll is
// served from the TTL cache, FindByID falls through to the uncached store
// since single-id lookups are rare and freshness matters more there.
type catalogueAdapter struct {
	cached   *catalogue.CachedStore
	fallback *store.CatalogueStore
}

func (a catalogueAdapter) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return a.cached.ListAll(ctx)
}

func (a catalogueAdapter) FindByID(ctx context.Context, id int) (*models.Plant, error) {
	return a.fallback.FindByID(ctx, id)
}

// compatibilityAdapter satisfies orchestrator.CompatibilityStore from the
// TTL cache.
type compatibilityAdapter struct {
	cached *catalogue.CachedStore
}

func (a compatibilityAdapter) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	return a.cached.LoadAll(ctx)
}
