package models

import (
	"math"
	"time"

	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// PlantInstance is one individually placed plant within a layout. It holds
// a logical reference (PlantID) to a catalogue Plant plus the resolved
// *Plant pointer for convenience during evaluation; the Plant itself is
// never copied or mutated through this reference.
type PlantInstance struct {
	PlantID   int                       `json:"plantId"`
	Plant     *Plant                    `json:"-"`
	X         float64                   `json:"x"`
	Y         float64                   `json:"y"`
	Width     float64                   `json:"width"`
	Height    float64                   `json:"height"`
	Rotation  constants.Rotation        `json:"rotation"`
	PlantedAt *time.Time                `json:"plantedAt,omitempty"`
	Status    constants.InstanceStatus  `json:"status"`
}

// NewPlantInstance creates an instance for the given plant at the given
// position, defaulting width/height to sqrt(size) and status to pending.
func NewPlantInstance(plant *Plant, x, y float64) *PlantInstance {
	side := math.Sqrt(plant.Size)
	return &PlantInstance{
		PlantID:  plant.ID,
		Plant:    plant,
		X:        x,
		Y:        y,
		Width:    side,
		Height:   side,
		Rotation: constants.Rotation0,
		Status:   constants.StatusPending,
	}
}

// Clone returns a shallow copy of the instance. The underlying Plant
// pointer is shared, never deep-copied, per the catalogue-owned contract.
func (pi *PlantInstance) Clone() *PlantInstance {
	cp := *pi
	if pi.PlantedAt != nil {
		t := *pi.PlantedAt
		cp.PlantedAt = &t
	}
	return &cp
}

// CenterX and CenterY return the instance's geometric center.
func (pi *PlantInstance) CenterX() float64 { return pi.X + pi.Width/2 }
func (pi *PlantInstance) CenterY() float64 { return pi.Y + pi.Height/2 }

// Area returns the instance's bounding-box area.
func (pi *PlantInstance) Area() float64 { return pi.Width * pi.Height }

// Distance returns the center-to-center euclidean distance to another instance.
func (pi *PlantInstance) Distance(other *PlantInstance) float64 {
	dx := pi.CenterX() - other.CenterX()
	dy := pi.CenterY() - other.CenterY()
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlaps reports whether this instance's bounding box intersects other's.
func (pi *PlantInstance) Overlaps(other *PlantInstance) bool {
	return pi.X < other.X+other.Width &&
		pi.X+pi.Width > other.X &&
		pi.Y < other.Y+other.Height &&
		pi.Y+pi.Height > other.Y
}

// WithinBounds reports whether the instance's bounding box lies fully
// inside a plot of the given width and height, with (0,0) as origin.
func (pi *PlantInstance) WithinBounds(plotWidth, plotHeight float64) bool {
	return pi.X >= 0 && pi.Y >= 0 &&
		pi.X+pi.Width <= plotWidth &&
		pi.Y+pi.Height <= plotHeight
}
