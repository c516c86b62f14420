package dto

import "github.com/urban-gardening-assistant/planner-engine/pkg/constants"

// InstanceView is one placed plant instance in a response layout.
type InstanceView struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	ScientificName string                `json:"scientificName"`
	Quantity       int                   `json:"quantity"`
	Position       PositionView          `json:"position"`
	Area           float64               `json:"area"`
	Types          []constants.PlantType `json:"types"`
}

// PositionView is an (x, y) coordinate pair.
type PositionView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutView is the plot dimensions plus its placed instances.
type LayoutView struct {
	Dimensions DimensionsView `json:"dimensions"`
	Instances  []InstanceView `json:"instances"`
}

// DimensionsView mirrors models.Dimensions for the response wire shape.
type DimensionsView struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	TotalArea float64 `json:"totalArea"`
}

// MetricsView is the six sub-scores plus fitness, each rounded to 4 decimals.
type MetricsView struct {
	CEE     float64 `json:"cee"`
	PSRNT   float64 `json:"psrnt"`
	EH      float64 `json:"eh"`
	UE      float64 `json:"ue"`
	CS      float64 `json:"cs"`
	BSN     float64 `json:"bsn"`
	Fitness float64 `json:"fitness"`
}

// Estimations are the orchestrator's derived per-solution estimates.
type Estimations struct {
	MonthlyProductionKg      float64 `json:"monthlyProductionKg"`
	WeeklyWaterLiters        float64 `json:"weeklyWaterLiters"`
	ImplementationCostMXN    float64 `json:"implementationCostMXN"`
	MaintenanceMinutesPerWeek int    `json:"maintenanceMinutesPerWeek"`
}

// CompatibilityPairView labels one unordered instance pair's affinity.
type CompatibilityPairView struct {
	InstanceAID int                          `json:"instanceAId"`
	InstanceBID int                          `json:"instanceBId"`
	Score       float64                      `json:"score"`
	Label       constants.CompatibilityLabel `json:"label"`
}

// CalendarSummary is a coarse harvest-cycle summary for the solution.
type CalendarSummary struct {
	EarliestHarvestDays int `json:"earliestHarvestDays"`
	LatestHarvestDays   int `json:"latestHarvestDays"`
}

// Solution is one ranked candidate layout in the response.
type Solution struct {
	Rank            int                     `json:"rank"`
	Layout          LayoutView              `json:"layout"`
	Metrics         MetricsView             `json:"metrics"`
	Estimations     Estimations             `json:"estimations"`
	Calendar        CalendarSummary         `json:"calendar"`
	Compatibilities []CompatibilityPairView `json:"compatibilities"`
	Narrative       string                  `json:"narrative,omitempty"`
}

// PlantSummary is one entry in the selected pool surfaced in metadata.
type PlantSummary struct {
	ID      int    `json:"id"`
	Species string `json:"species"`
}

// Metadata carries the GA run's bookkeeping and the selected pool.
type Metadata struct {
	ExecutionTimeMs       int64                      `json:"executionTimeMs"`
	TotalGenerations      int                        `json:"totalGenerations"`
	ConvergenceGeneration int                        `json:"convergenceGeneration"`
	PopulationSize        int                        `json:"populationSize"`
	StoppingReason        constants.StoppingReason   `json:"stoppingReason"`
	Weights               MetricsView                `json:"weights"`
	SelectedPlants         []PlantSummary             `json:"selectedPlants"`
}

// GardenPlanResponse is the complete outbound response (spec §6).
type GardenPlanResponse struct {
	Success   bool       `json:"success"`
	Solutions []Solution `json:"solutions"`
	Metadata  Metadata   `json:"metadata"`
}
