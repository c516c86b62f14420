package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

// compatibilityRow is the GORM row backing the compatibility table.
type compatibilityRow struct {
	ID       int `gorm:"primaryKey"`
	Species1 string
	Species2 string
	Score    float64
}

func (compatibilityRow) TableName() string { return "compatibility_entries" }

// CompatibilityStore is a GORM-backed implementation of the orchestrator's
// CompatibilityStore port.
type CompatibilityStore struct {
	db *gorm.DB
}

// NewCompatibilityStore wraps an established GORM connection.
func NewCompatibilityStore(db *gorm.DB) *CompatibilityStore {
	return &CompatibilityStore{db: db}
}

// LoadAll returns every compatibility entry, used once to build the
// in-memory index.
func (s *CompatibilityStore) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	var rows []compatibilityRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load compatibility entries")
	}

	entries := make([]models.CompatibilityEntry, len(rows))
	for i, r := range rows {
		entries[i] = models.CompatibilityEntry{Species1: r.Species1, Species2: r.Species2, Score: r.Score}
	}
	return entries, nil
}
