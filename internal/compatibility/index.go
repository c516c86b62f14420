// Package compatibility builds and serves the in-memory pairwise species
// affinity lookup the rest of the engine treats as ground truth.
package compatibility

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// Index is an immutable, two-level symmetric lookup of pairwise
// compatibility scores, built once per process from a CompatibilityStore
// load. It may be shared across concurrent requests once built.
type Index struct {
	scores map[string]map[string]float64
}

// Build loads the given entries into a two-level mapping
// species1 -> species2 -> score. It returns a CatalogueError if entries is
// nil (loading failure); an empty, non-nil slice builds a valid, empty
// index.
func Build(entries []models.CompatibilityEntry) (*Index, error) {
	if entries == nil {
		return nil, errors.NewError(constants.ErrCatalogue, "compatibility entries failed to load", nil)
	}

	idx := &Index{scores: make(map[string]map[string]float64)}
	for _, e := range entries {
		if _, ok := idx.scores[e.Species1]; !ok {
			idx.scores[e.Species1] = make(map[string]float64)
		}
		idx.scores[e.Species1][e.Species2] = e.Score
	}
	return idx, nil
}

// Lookup returns the compatibility score between species a and b, checking
// both orderings and defaulting to 0 (neutral) when no entry exists in
// either direction. This never fails.
func (idx *Index) Lookup(a, b string) float64 {
	if idx == nil {
		return 0
	}
	if inner, ok := idx.scores[a]; ok {
		if score, ok := inner[b]; ok {
			return score
		}
	}
	if inner, ok := idx.scores[b]; ok {
		if score, ok := inner[a]; ok {
			return score
		}
	}
	return 0
}
