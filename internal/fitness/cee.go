// Package fitness implements the multi-objective evaluator: six
// sub-metrics over an Individual's layout plus objective-weighted
// aggregation to a scalar fitness.
package fitness

import (
	"math"

	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

const (
	ceeDistanceDecay      = 2.0
	ceePenaltyCompat      = -0.5
	ceePenaltyDistance    = 1.5
	ceePenaltyFactor      = 2.0
	ceeBonusCompat        = 0.5
	ceeBonusDistance      = 1.0
	ceeBonusFactor        = 1.5
)

// CEE computes pairwise compatibility with distance weighting over every
// unordered instance pair, per spec §4.4.
func CEE(plants []*models.PlantInstance, index *compatibility.Index) float64 {
	if len(plants) < 2 {
		return 1.0
	}

	var weightedSum, totalWeight float64
	for i := 0; i < len(plants); i++ {
		for j := i + 1; j < len(plants); j++ {
			p, q := plants[i], plants[j]
			d := p.Distance(q)
			w := math.Exp(-d / ceeDistanceDecay)

			compat := 0.0
			if p.Plant != nil && q.Plant != nil {
				compat = index.Lookup(p.Plant.Species, q.Plant.Species)
			}

			contrib := compat * w
			switch {
			case compat < ceePenaltyCompat && d < ceePenaltyDistance:
				contrib *= ceePenaltyFactor
			case compat > ceeBonusCompat && d < ceeBonusDistance:
				contrib *= ceeBonusFactor
			}

			weightedSum += contrib
			totalWeight += w
		}
	}

	if totalWeight == 0 {
		return 1.0
	}

	raw := weightedSum / totalWeight
	// remap [-1, 1] -> [0, 1], clamped
	v := (raw + 1) / 2
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
