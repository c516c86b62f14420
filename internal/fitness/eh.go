package fitness

import "github.com/urban-gardening-assistant/planner-engine/internal/models"

const (
	ehLowBand      = 0.80
	ehHighBand     = 0.95
	ehOverPenalty  = 2.0
)

// EH computes water-efficiency from the ratio of total weekly water use to
// the maximum allowed, per spec §4.4's piecewise function.
func EH(ind *models.Individual, maxWaterWeekly float64) float64 {
	if maxWaterWeekly == 0 {
		return 1.0
	}

	u := ind.TotalWeeklyWater() / maxWaterWeekly

	switch {
	case u > 1.00:
		v := 1 - (u-1)*ehOverPenalty
		if v < 0 {
			return 0
		}
		return v
	case u >= ehLowBand && u <= ehHighBand:
		return 1.0
	case u < ehLowBand:
		return clamp01(u / ehLowBand)
	default: // 0.95 < u <= 1.00
		return clamp01(1 - (u-ehHighBand)*ehOverPenalty)
	}
}
