package fitness

import (
	"math"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

const numCategories = 4

// categoryCounts tallies instance-tag incidences across the four plant
// type categories. An instance with multiple tags contributes to each.
func categoryCounts(plants []*models.PlantInstance) [numCategories]float64 {
	var counts [numCategories]float64
	for _, p := range plants {
		if p.Plant == nil {
			continue
		}
		for _, t := range p.Plant.Types {
			switch t {
			case constants.TypeVegetable:
				counts[0]++
			case constants.TypeMedicinal:
				counts[1]++
			case constants.TypeAromatic:
				counts[2]++
			case constants.TypeOrnamental:
				counts[3]++
			}
		}
	}
	return counts
}

// categoryPercentages normalizes raw incidence counts to a 4-bucket vector
// summing to 100.
func categoryPercentages(counts [numCategories]float64) [numCategories]float64 {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return [numCategories]float64{}
	}
	var pct [numCategories]float64
	for i, c := range counts {
		pct[i] = c / total * 100
	}
	return pct
}

// PSRNT computes category-distribution satisfaction. When desired is nil,
// it returns the Shannon-entropy diversity bonus over non-zero buckets
// instead, per spec §4.4.
func PSRNT(plants []*models.PlantInstance, desired *models.CategoryDistribution) float64 {
	actual := categoryPercentages(categoryCounts(plants))

	if desired == nil {
		return shannonDiversity(actual)
	}

	desiredVec := [numCategories]float64{desired.Vegetable, desired.Medicinal, desired.Aromatic, desired.Ornamental}

	var mse float64
	for i := 0; i < numCategories; i++ {
		diff := actual[i] - desiredVec[i]
		mse += diff * diff
	}
	mse /= numCategories

	v := 1 - math.Sqrt(mse)/100
	if v < 0 {
		return 0
	}
	return clamp01(v)
}

func shannonDiversity(pct [numCategories]float64) float64 {
	var h float64
	for _, p := range pct {
		if p <= 0 {
			continue
		}
		probability := p / 100
		h -= probability * math.Log2(probability)
	}
	maxEntropy := math.Log2(numCategories)
	if maxEntropy == 0 {
		return 0
	}
	return clamp01(h / maxEntropy)
}
