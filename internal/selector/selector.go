// Package selector implements the intelligent plant selector: it scores a
// catalogue under objective, compatibility, and user-preference
// constraints and greedily picks a small species pool for the genetic
// algorithm to place.
package selector

import (
	"sort"

	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// stronglyNegativeThreshold is the compatibility score below which a pair
// is considered strongly antagonistic for the mutual-compatibility gate.
const stronglyNegativeThreshold = -0.3

// Config parameterizes one selection run.
type Config struct {
	DesiredPlantIDs []int
	MaxSpecies      int
	Objective       constants.Objective
	Index           *compatibility.Index
	Season          constants.Season
}

// scoredPlant pairs a catalogue Plant with its selection score.
type scoredPlant struct {
	plant *models.Plant
	score float64
}

// Select scores and greedily picks up to cfg.MaxSpecies species from the
// catalogue. It never fails and always returns at least one plant when the
// catalogue is non-empty.
func Select(catalogue []*models.Plant, cfg Config) []*models.Plant {
	if len(catalogue) == 0 {
		return nil
	}

	candidates := filterByDesired(catalogue, cfg.DesiredPlantIDs)
	if len(candidates) < cfg.MaxSpecies {
		candidates = catalogue
	}

	scored := scoreCandidates(candidates, cfg)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	selected := greedyPick(scored, cfg.Index, cfg.MaxSpecies)
	if len(selected) < cfg.MaxSpecies {
		selected = fillRemainder(selected, scored, cfg.MaxSpecies)
	}

	return selected
}

func filterByDesired(catalogue []*models.Plant, desiredIDs []int) []*models.Plant {
	if len(desiredIDs) == 0 {
		return catalogue
	}
	wanted := make(map[int]bool, len(desiredIDs))
	for _, id := range desiredIDs {
		wanted[id] = true
	}
	var out []*models.Plant
	for _, p := range catalogue {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func scoreCandidates(candidates []*models.Plant, cfg Config) []scoredPlant {
	scored := make([]scoredPlant, len(candidates))
	for i, p := range candidates {
		scored[i] = scoredPlant{
			plant: p,
			score: score(p, candidates, cfg),
		}
	}
	return scored
}

func greedyPick(scored []scoredPlant, index *compatibility.Index, maxSpecies int) []*models.Plant {
	var selected []*models.Plant
	for _, sp := range scored {
		if len(selected) >= maxSpecies {
			break
		}
		if stronglyNegativeCount(sp.plant, selected, index) <= 1 {
			selected = append(selected, sp.plant)
		}
	}
	return selected
}

func fillRemainder(selected []*models.Plant, scored []scoredPlant, maxSpecies int) []*models.Plant {
	present := make(map[int]bool, len(selected))
	for _, p := range selected {
		present[p.ID] = true
	}
	for _, sp := range scored {
		if len(selected) >= maxSpecies {
			break
		}
		if !present[sp.plant.ID] {
			selected = append(selected, sp.plant)
			present[sp.plant.ID] = true
		}
	}
	return selected
}

func stronglyNegativeCount(candidate *models.Plant, selected []*models.Plant, index *compatibility.Index) int {
	count := 0
	for _, s := range selected {
		if index.Lookup(candidate.Species, s.Species) < stronglyNegativeThreshold {
			count++
		}
	}
	return count
}
