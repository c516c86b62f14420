// Package dto defines the inbound/outbound wire shapes the orchestrator's
// HTTP entrypoint accepts and produces.
package dto

// DimensionsRequest is the optional plot size the caller may supply.
type DimensionsRequest struct {
	Width  float64 `json:"width" validate:"omitempty,gte=0.5,lte=10"`
	Height float64 `json:"height" validate:"omitempty,gte=0.5,lte=10"`
}

// LocationRequest is the optional garden location the caller may supply.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// CategoryDistributionRequest is the optional desired category split.
type CategoryDistributionRequest struct {
	Vegetable  float64 `json:"vegetable" validate:"gte=0,lte=100"`
	Medicinal  float64 `json:"medicinal" validate:"gte=0,lte=100"`
	Ornamental float64 `json:"ornamental" validate:"gte=0,lte=100"`
	Aromatic   float64 `json:"aromatic" validate:"gte=0,lte=100"`
}

// GardenPlanRequest is the core inbound contract (spec §6).
type GardenPlanRequest struct {
	UserID              string                       `json:"userId" validate:"required"`
	DesiredPlantIDs     []int                        `json:"desiredPlantIds"`
	MaxPlantSpecies     int                          `json:"maxPlantSpecies" validate:"omitempty,oneof=3 5"`
	Dimensions          *DimensionsRequest           `json:"dimensions"`
	WaterLimit          *float64                     `json:"waterLimit" validate:"omitempty,gte=0"`
	UserExperience      int                          `json:"userExperience" validate:"required,oneof=1 2 3"`
	Season              string                       `json:"season" validate:"omitempty,oneof=auto spring summer autumn winter"`
	Location            *LocationRequest             `json:"location"`
	CategoryDistribution *CategoryDistributionRequest `json:"categoryDistribution"`
	Budget              *float64                     `json:"budget" validate:"omitempty,gte=0"`
	Objective           string                       `json:"objective" validate:"omitempty,oneof=alimenticio medicinal sostenible ornamental"`
	MaintenanceMinutes  *int                         `json:"maintenanceMinutes" validate:"omitempty,gte=0"`
	Seed                *int64                       `json:"seed"`
}
