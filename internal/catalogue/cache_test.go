package catalogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

type stubLoader struct {
	plants     []*models.Plant
	entries    []models.CompatibilityEntry
	listCalls  int
	loadCalls  int
}

func (s *stubLoader) ListAll(ctx context.Context) ([]*models.Plant, error) {
	s.listCalls++
	return s.plants, nil
}

func (s *stubLoader) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	s.loadCalls++
	return s.entries, nil
}

func TestCachedStore_ListAll_CachesAfterFirstLoad(t *testing.T) {
	source := &stubLoader{plants: []*models.Plant{{ID: 1, Species: "tomato"}}}
	cached := NewCachedStore(source)

	ctx := context.Background()
	first, err := cached.ListAll(ctx)
	require.NoError(t, err)
	second, err := cached.ListAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.listCalls)
}

func TestCachedStore_LoadAll_CachesAfterFirstLoad(t *testing.T) {
	source := &stubLoader{entries: []models.CompatibilityEntry{{Species1: "a", Species2: "b", Score: 0.5}}}
	cached := NewCachedStore(source)

	ctx := context.Background()
	_, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	_, err = cached.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, source.loadCalls)
}

func TestCachedStore_Invalidate_ForcesReload(t *testing.T) {
	source := &stubLoader{plants: []*models.Plant{{ID: 1, Species: "tomato"}}}
	cached := NewCachedStore(source)

	ctx := context.Background()
	_, err := cached.ListAll(ctx)
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.listCalls)
}
