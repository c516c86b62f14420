package models

import "github.com/urban-gardening-assistant/planner-engine/pkg/constants"

// Dimensions describes a rectangular plot.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	TotalArea float64 `json:"totalArea"`
}

// NewDimensions builds a Dimensions from width/height, deriving totalArea.
func NewDimensions(width, height float64) Dimensions {
	return Dimensions{Width: width, Height: height, TotalArea: width * height}
}

// Individual is one candidate layout: a genome of placed PlantInstances
// over a fixed plot, plus the Metrics computed for it by the evaluator.
// Individuals are mutated in-place by GA operators during a generation and
// replaced wholesale at generation boundaries; Metrics must be recomputed
// after any structural mutation.
type Individual struct {
	Dimensions Dimensions       `json:"dimensions"`
	Plants     []*PlantInstance `json:"plants"`
	Metrics    *Metrics         `json:"metrics,omitempty"`
}

// NewIndividual creates an empty individual over the given plot.
func NewIndividual(dimensions Dimensions) *Individual {
	return &Individual{Dimensions: dimensions, Plants: nil}
}

// Clone returns a deep-enough copy for GA use: the instance list is
// cloned (each PlantInstance shallow-copied, Plant pointer shared) and the
// Metrics record copied by value. Plants are never deep-copied.
func (ind *Individual) Clone() *Individual {
	cp := &Individual{Dimensions: ind.Dimensions}
	if len(ind.Plants) > 0 {
		cp.Plants = make([]*PlantInstance, len(ind.Plants))
		for i, p := range ind.Plants {
			cp.Plants[i] = p.Clone()
		}
	}
	if ind.Metrics != nil {
		m := *ind.Metrics
		cp.Metrics = &m
	}
	return cp
}

// TotalPlants returns the number of placed instances.
func (ind *Individual) TotalPlants() int {
	return len(ind.Plants)
}

// UsedArea returns the sum of each instance's bounding-box area.
func (ind *Individual) UsedArea() float64 {
	var total float64
	for _, p := range ind.Plants {
		total += p.Area()
	}
	return total
}

// TotalWeeklyWater returns the sum of each placed plant's weekly watering
// requirement.
func (ind *Individual) TotalWeeklyWater() float64 {
	var total float64
	for _, p := range ind.Plants {
		if p.Plant != nil {
			total += p.Plant.WeeklyWatering
		}
	}
	return total
}

// TotalCost returns the sum of each placed plant's footprint size times the
// currency cost per square meter.
func (ind *Individual) TotalCost() float64 {
	var total float64
	for _, p := range ind.Plants {
		if p.Plant != nil {
			total += p.Plant.Size * constants.CostPerSquareMeter
		}
	}
	return total
}

// Fitness returns the individual's aggregated fitness, or 0 when metrics
// have not yet been computed.
func (ind *Individual) Fitness() float64 {
	if ind.Metrics == nil {
		return 0
	}
	return ind.Metrics.Fitness
}
