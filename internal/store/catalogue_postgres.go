package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// plantRow is the GORM row backing the catalogue table. Types and Benefits
// are stored as comma-joined strings to avoid an extra join table, mirroring
// the engine's preference for simple scalar columns over array types.
type plantRow struct {
	ID             int    `gorm:"primaryKey"`
	UID            string `gorm:"uniqueIndex;size:36"`
	Species        string `gorm:"uniqueIndex;size:255"`
	ScientificName string
	Types          string
	SunRequirement string
	WeeklyWatering float64
	HarvestDays    int
	SoilType       string
	WaterPerKg     float64
	Benefits       string
	Size           float64
}

func (plantRow) TableName() string { return "plants" }

// BeforeCreate assigns a UUID row identity, mirroring the engine's gorm
// model hook conventions.
func (p *plantRow) BeforeCreate(tx *gorm.DB) error {
	if p.UID == "" {
		p.UID = uuid.New().String()
	}
	return nil
}

// CatalogueStore is a GORM-backed implementation of the orchestrator's
// CatalogueStore port.
type CatalogueStore struct {
	db *gorm.DB
}

// NewCatalogueStore wraps an established GORM connection.
func NewCatalogueStore(db *gorm.DB) *CatalogueStore {
	return &CatalogueStore{db: db}
}

// ListAll returns every catalogue plant.
func (s *CatalogueStore) ListAll(ctx context.Context) ([]*models.Plant, error) {
	var rows []plantRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list catalogue")
	}

	plants := make([]*models.Plant, len(rows))
	for i, r := range rows {
		plants[i] = rowToPlant(r)
	}
	return plants, nil
}

// FindByID returns a single plant by catalogue id, or nil if not found.
func (s *CatalogueStore) FindByID(ctx context.Context, id int) (*models.Plant, error) {
	var row plantRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find plant id %d", id)
	}
	return rowToPlant(row), nil
}

func rowToPlant(r plantRow) *models.Plant {
	return &models.Plant{
		ID:             r.ID,
		Species:        r.Species,
		ScientificName: r.ScientificName,
		Types:          splitTypes(r.Types),
		SunRequirement: constants.SunRequirement(r.SunRequirement),
		WeeklyWatering: r.WeeklyWatering,
		HarvestDays:    r.HarvestDays,
		SoilType:       r.SoilType,
		WaterPerKg:     r.WaterPerKg,
		Benefits:       splitCSV(r.Benefits),
		Size:           r.Size,
	}
}

func splitTypes(csv string) []constants.PlantType {
	parts := splitCSV(csv)
	types := make([]constants.PlantType, len(parts))
	for i, p := range parts {
		types[i] = constants.PlantType(p)
	}
	return types
}

func splitCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
