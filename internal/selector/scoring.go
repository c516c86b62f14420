package selector

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

const (
	weightObjective     = 0.30
	weightCompatibility = 0.40
	weightResource      = 0.20
	weightDiversity     = 0.10
)

// score computes a candidate's selection score against the full candidate
// pool, per spec §4.3 step 3.
func score(p *models.Plant, pool []*models.Plant, cfg Config) float64 {
	return weightObjective*objectiveScore(p, cfg.Objective) +
		weightCompatibility*compatibilityScore(p, pool, cfg.Index) +
		weightResource*resourceScore(p) +
		weightDiversity*diversityScore(p)
}

func objectiveScore(p *models.Plant, objective constants.Objective) float64 {
	switch objective {
	case constants.ObjectiveMedicinal:
		switch {
		case p.HasType(constants.TypeMedicinal):
			return 1.0
		case p.HasType(constants.TypeAromatic):
			return 0.6
		default:
			return 0.2
		}
	case constants.ObjectiveSostenible:
		v := 1 - p.WeeklyWatering/100
		if v < 0 {
			v = 0
		}
		return v
	case constants.ObjectiveOrnamental:
		switch {
		case p.HasType(constants.TypeOrnamental):
			return 1.0
		case p.HasType(constants.TypeAromatic):
			return 0.5
		default:
			return 0.2
		}
	default: // alimenticio
		if p.HasType(constants.TypeVegetable) {
			return 1.0
		}
		return 0.3
	}
}

func compatibilityScore(p *models.Plant, pool []*models.Plant, index *compatibility.Index) float64 {
	var sum float64
	var count int
	for _, other := range pool {
		if other.Species == p.Species {
			continue
		}
		sum += index.Lookup(p.Species, other.Species)
		count++
	}
	if count == 0 {
		return 1.0
	}
	mean := sum / float64(count)
	// remap [-1, 1] -> [0, 1]
	return (mean + 1) / 2
}

func resourceScore(p *models.Plant) float64 {
	sizeTerm := 1 - p.Size/2
	if sizeTerm < 0 {
		sizeTerm = 0
	}
	waterTerm := 1 - p.WeeklyWatering/100
	if waterTerm < 0 {
		waterTerm = 0
	}
	return (sizeTerm + waterTerm) / 2
}

func diversityScore(p *models.Plant) float64 {
	v := float64(len(p.Types)) / 3
	if v > 1 {
		return 1
	}
	return v
}
