package fitness

import "github.com/urban-gardening-assistant/planner-engine/internal/models"

const bsnExcessPenalty = 0.2

// BSN computes soil-type diversity from the count of distinct soilType
// values across placed instances, per spec §4.4.
func BSN(plants []*models.PlantInstance) float64 {
	distinct := make(map[string]bool)
	for _, p := range plants {
		if p.Plant == nil {
			continue
		}
		distinct[p.Plant.SoilType] = true
	}
	k := len(distinct)

	switch {
	case k == 2 || k == 3:
		return 1.0
	case k == 1:
		return 0.6
	case k >= 4:
		v := 1 - float64(k-3)*bsnExcessPenalty
		if v < 0.4 {
			return 0.4
		}
		return v
	default: // k == 0, empty layout
		return 1.0
	}
}
