// Package models defines the core data types of the garden planner engine:
// the catalogue Plant, CompatibilityEntry, PlantInstance, Individual,
// Metrics, and Constraints described by the planning domain.
package models

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// Plant is an immutable catalogue species. Zero or more PlantInstances in a
// layout reference a Plant by ID; the Plant itself is never cloned or
// mutated once loaded.
type Plant struct {
	ID             int                        `json:"id"`
	Species        string                     `json:"species"`
	ScientificName string                     `json:"scientificName"`
	Types          []constants.PlantType      `json:"types"`
	SunRequirement constants.SunRequirement   `json:"sunRequirement"`
	WeeklyWatering float64                    `json:"weeklyWatering"`
	HarvestDays    int                        `json:"harvestDays"`
	SoilType       string                     `json:"soilType"`
	WaterPerKg     float64                    `json:"waterPerKg"`
	Benefits       []string                   `json:"benefits"`
	Size           float64                    `json:"size"`
}

// HasType reports whether the plant carries the given type tag.
func (p *Plant) HasType(t constants.PlantType) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// Validate checks the Plant's invariants: non-empty species, non-empty
// types, positive size, non-negative watering, harvestDays >= 1.
func (p *Plant) Validate() error {
	if p.ID <= 0 {
		return errors.NewError(constants.ErrValidation, "plant id must be positive", map[string]interface{}{"id": p.ID})
	}
	if p.Species == "" {
		return errors.NewError(constants.ErrValidation, "plant species must not be empty", nil)
	}
	if len(p.Types) == 0 {
		return errors.NewError(constants.ErrValidation, "plant must carry at least one type tag", map[string]interface{}{"species": p.Species})
	}
	if p.Size <= 0 {
		return errors.NewError(constants.ErrValidation, "plant size must be positive", map[string]interface{}{"species": p.Species, "size": p.Size})
	}
	if p.WeeklyWatering < 0 {
		return errors.NewError(constants.ErrValidation, "plant weeklyWatering must be non-negative", map[string]interface{}{"species": p.Species})
	}
	if p.HarvestDays < 1 {
		return errors.NewError(constants.ErrValidation, "plant harvestDays must be >= 1", map[string]interface{}{"species": p.Species})
	}
	return nil
}
