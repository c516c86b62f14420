package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/internal/catalogue"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

type stubLoader struct {
	plants  []*models.Plant
	entries []models.CompatibilityEntry
}

func (s stubLoader) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return s.plants, nil
}

func (s stubLoader) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	return s.entries, nil
}

func TestStubLoader_ReturnsConfiguredPlantsAndEntries(t *testing.T) {
	source := stubLoader{
		plants:  []*models.Plant{{ID: 1, Species: "tomato"}},
		entries: []models.CompatibilityEntry{{Species1: "tomato", Species2: "basil", Score: 0.5}},
	}

	plants, err := source.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, plants, 1)

	entries, err := source.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalogueAdapter_ListAll_ServedFromCacheWithoutFallback(t *testing.T) {
	source := stubLoader{plants: []*models.Plant{{ID: 1, Species: "basil"}}}
	cached := catalogue.NewCachedStore(source)

	adapter := catalogueAdapter{cached: cached, fallback: nil}

	plants, err := adapter.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "basil", plants[0].Species)
}

func TestCompatibilityAdapter_LoadAll_ServedFromCache(t *testing.T) {
	source := stubLoader{entries: []models.CompatibilityEntry{{Species1: "mint", Species2: "basil", Score: -0.3}}}
	cached := catalogue.NewCachedStore(source)

	adapter := compatibilityAdapter{cached: cached}

	entries, err := adapter.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, -0.3, entries[0].Score)
}
