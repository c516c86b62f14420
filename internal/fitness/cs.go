package fitness

import (
	"math"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

const csStdevDivisor = 60.0

// CS computes harvest-cycle synchronization from the standard deviation of
// harvestDays across placed instances, per spec §4.4.
func CS(plants []*models.PlantInstance) float64 {
	if len(plants) < 2 {
		return 1.0
	}

	var sum float64
	n := 0
	for _, p := range plants {
		if p.Plant == nil {
			continue
		}
		sum += float64(p.Plant.HarvestDays)
		n++
	}
	if n < 2 {
		return 1.0
	}
	mean := sum / float64(n)

	var variance float64
	for _, p := range plants {
		if p.Plant == nil {
			continue
		}
		diff := float64(p.Plant.HarvestDays) - mean
		variance += diff * diff
	}
	variance /= float64(n)
	stdev := math.Sqrt(variance)

	v := 1 - stdev/csStdevDivisor
	if v < 0 {
		return 0
	}
	return clamp01(v)
}
