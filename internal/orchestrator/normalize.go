package orchestrator

import (
	"math"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/rng"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

const (
	defaultAreaMin = 1.0
	defaultAreaMax = 5.0

	defaultWaterFactorMin = 50.0
	defaultWaterFactorMax = 80.0

	defaultBudgetPerSquareMeter = 200.0
	defaultMaxPlantSpecies      = 5

	defaultMaintenanceMultiplier = 60
)

// NormalizedPlan is the fully-defaulted, internally-consistent shape the
// orchestrator drives the Selector/GA/Validator pipeline from.
type NormalizedPlan struct {
	Objective                  constants.Objective
	Season                     constants.Season
	MaxPlantSpecies            int
	Dimensions                 models.Dimensions
	Constraints                models.Constraints
	UserExperience              int
	AvailableMaintenanceMinutes int
	Location                   Location
}

// Location is the garden's geographic position, defaulted per spec §6.
type Location struct {
	Lat float64
	Lon float64
}

// Normalize fills in every optional field of req with its documented
// default, drawing any randomized defaults from source so that a fixed
// seed reproduces the whole request deterministically.
func Normalize(req *dto.GardenPlanRequest, source *rng.Source) NormalizedPlan {
	plan := NormalizedPlan{}

	plan.MaxPlantSpecies = req.MaxPlantSpecies
	if plan.MaxPlantSpecies == 0 {
		plan.MaxPlantSpecies = defaultMaxPlantSpecies
	}

	plan.Objective = constants.Objective(req.Objective)
	if !plan.Objective.IsValid() {
		plan.Objective = constants.ObjectiveAlimenticio
	}

	plan.Season = constants.Season(req.Season)
	if !plan.Season.IsValid() {
		plan.Season = constants.SeasonAuto
	}

	plan.Dimensions = normalizeDimensions(req.Dimensions, source)

	plan.UserExperience = req.UserExperience

	plan.AvailableMaintenanceMinutes = defaultMaintenanceMinutesFor(req, plan.UserExperience)

	plan.Location = normalizeLocation(req.Location)

	plan.Constraints = models.Constraints{
		MaxArea:                     plan.Dimensions.TotalArea,
		MaxWaterWeekly:              normalizeWaterLimit(req.WaterLimit, plan.Dimensions.TotalArea, source),
		MaxBudget:                   normalizeBudget(req.Budget, plan.Dimensions.TotalArea),
		DesiredCategoryDistribution: normalizeCategoryDistribution(req.CategoryDistribution),
		DesiredPlantIDs:             req.DesiredPlantIDs,
	}

	return plan
}

func normalizeDimensions(req *dto.DimensionsRequest, source *rng.Source) models.Dimensions {
	if req != nil && req.Width > 0 && req.Height > 0 {
		return models.NewDimensions(req.Width, req.Height)
	}

	area := source.Float64Range(defaultAreaMin, defaultAreaMax)
	aspect := source.Float64Range(0.6, 1.4)
	width := math.Sqrt(area * aspect)
	height := area / width
	return models.NewDimensions(width, height)
}

func normalizeWaterLimit(waterLimit *float64, area float64, source *rng.Source) float64 {
	if waterLimit != nil {
		return *waterLimit
	}
	factor := source.Float64Range(defaultWaterFactorMin, defaultWaterFactorMax)
	return area * factor
}

func normalizeBudget(budget *float64, area float64) *float64 {
	if budget != nil {
		return budget
	}
	v := area * defaultBudgetPerSquareMeter
	return &v
}

func normalizeCategoryDistribution(req *dto.CategoryDistributionRequest) *models.CategoryDistribution {
	if req == nil {
		return nil
	}
	return &models.CategoryDistribution{
		Vegetable:  req.Vegetable,
		Medicinal:  req.Medicinal,
		Aromatic:   req.Aromatic,
		Ornamental: req.Ornamental,
	}
}

func normalizeLocation(req *dto.LocationRequest) Location {
	if req != nil {
		return Location{Lat: req.Lat, Lon: req.Lon}
	}
	return Location{Lat: constants.DefaultLatitude, Lon: constants.DefaultLongitude}
}

func defaultMaintenanceMinutesFor(req *dto.GardenPlanRequest, experience int) int {
	if req.MaintenanceMinutes != nil {
		return *req.MaintenanceMinutes
	}
	if minutes, ok := constants.DefaultMaintenanceMinutes[experience]; ok {
		return minutes
	}
	return experience * defaultMaintenanceMultiplier
}
