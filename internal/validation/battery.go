// Package validation runs the five-category validation battery that gates
// final solutions before they are returned to the caller.
package validation

import (
	"fmt"

	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

const (
	maxUsedAreaFraction       = 0.85
	agriculturalMinDistance   = 1.0
	agriculturalMinCompat     = -0.5
)

// Report is the structured result of one validation run. It never
// represents a thrown error for data reasons.
type Report struct {
	IsValid bool     `json:"isValid"`
	Passed  []string `json:"passed"`
	Failed  []string `json:"failed"`
	Errors  []string `json:"errors"`
}

// Input bundles everything the battery needs beyond the Individual itself.
type Input struct {
	Catalogue                  map[int]*models.Plant
	MaxArea                    float64
	MaxBudget                  *float64
	AvailableMaintenanceMinutes int
	Index                      *compatibility.Index
}

// Validate runs the five checks independently and aggregates into a
// Report. isValid iff all five pass.
func Validate(ind *models.Individual, in Input) *Report {
	checks := []struct {
		name string
		run  func(*models.Individual, Input) (bool, string)
	}{
		{"botanical", botanical},
		{"physical", physical},
		{"technical", technical},
		{"economic", economic},
		{"agricultural", agricultural},
	}

	report := &Report{IsValid: true}
	for _, c := range checks {
		ok, errMsg := c.run(ind, in)
		if ok {
			report.Passed = append(report.Passed, c.name)
		} else {
			report.Failed = append(report.Failed, c.name)
			report.Errors = append(report.Errors, errMsg)
			report.IsValid = false
		}
	}
	return report
}

func botanical(ind *models.Individual, in Input) (bool, string) {
	for _, p := range ind.Plants {
		if _, ok := in.Catalogue[p.PlantID]; !ok {
			return false, fmt.Sprintf("plant id %d not found in catalogue", p.PlantID)
		}
	}
	return true, ""
}

func physical(ind *models.Individual, in Input) (bool, string) {
	used := ind.UsedArea()
	if used > in.MaxArea {
		return false, fmt.Sprintf("usedArea %.2f exceeds maxArea %.2f", used, in.MaxArea)
	}
	if ind.Dimensions.TotalArea > 0 && used/ind.Dimensions.TotalArea > maxUsedAreaFraction {
		return false, fmt.Sprintf("usedArea ratio %.4f exceeds %.2f", used/ind.Dimensions.TotalArea, maxUsedAreaFraction)
	}
	return true, ""
}

func technical(ind *models.Individual, in Input) (bool, string) {
	required := ind.TotalPlants() * constants.MinutesPerPlant
	if required > in.AvailableMaintenanceMinutes {
		return false, fmt.Sprintf("required maintenance %d min exceeds available %d min", required, in.AvailableMaintenanceMinutes)
	}
	return true, ""
}

func economic(ind *models.Individual, in Input) (bool, string) {
	if in.MaxBudget == nil {
		return true, ""
	}
	cost := ind.TotalCost()
	if cost > *in.MaxBudget {
		return false, fmt.Sprintf("totalCost %.2f exceeds maxBudget %.2f", cost, *in.MaxBudget)
	}
	return true, ""
}

func agricultural(ind *models.Individual, in Input) (bool, string) {
	plants := ind.Plants
	for i := 0; i < len(plants); i++ {
		for j := i + 1; j < len(plants); j++ {
			p, q := plants[i], plants[j]
			if p.Plant == nil || q.Plant == nil {
				continue
			}
			d := p.Distance(q)
			if d < agriculturalMinDistance {
				compat := in.Index.Lookup(p.Plant.Species, q.Plant.Species)
				if compat < agriculturalMinCompat {
					return false, fmt.Sprintf("incompatible pair (%s, %s) at distance %.2f m", p.Plant.Species, q.Plant.Species, d)
				}
			}
		}
	}
	return true, ""
}
