package fitness

import "github.com/urban-gardening-assistant/planner-engine/internal/models"

const (
	ueLowBand  = 0.70
	ueHighBand = 0.85
	ueOverPenalty = 3.0
)

// UE computes space utilization from the ratio of used to total plot
// area, per spec §4.4's piecewise function.
func UE(ind *models.Individual) float64 {
	if ind.Dimensions.TotalArea == 0 {
		return 0
	}

	u := ind.UsedArea() / ind.Dimensions.TotalArea

	switch {
	case u >= ueLowBand && u <= ueHighBand:
		return 1.0
	case u < ueLowBand:
		return clamp01(u / ueLowBand)
	default:
		v := 1 - (u-ueHighBand)*ueOverPenalty
		if v < 0 {
			return 0
		}
		return v
	}
}
