// Package gardens provides database operations for garden records.
//
// This package implements the GardenStore interface defined in internal/http/gardens.go
// and the seed store used by internal/importers.
//
// # Absent rows
//
// A missing row is not an error: GetByID and Update return a nil garden,
// Delete returns a zero count. Errors are reserved for storage failures.
//
// # Usage
//
//	repo := gardens.NewRepository(db.DB)
//	garden, err := repo.Create(entities.GardenInput{Name: &name})
package gardens

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrlokans/gardens/internal/entities"
)

// Repository handles all garden database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new gardens repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BatchResult counts the outcome of InsertBatch.
type BatchResult struct {
	Inserted int
	Failed   int
}

// GetAll returns every garden ordered by ascending id. Never nil on success.
func (r *Repository) GetAll() ([]entities.Garden, error) {
	gardens := make([]entities.Garden, 0)
	if err := r.db.Order("id ASC").Find(&gardens).Error; err != nil {
		zap.S().Errorf("Database error in GetAll: %v", err)
		return nil, err
	}
	if gardens == nil {
		gardens = []entities.Garden{}
	}
	zap.S().Debugf("Query returned %d gardens", len(gardens))
	return gardens, nil
}

// GetByID returns the garden with the given id, or nil if there is none.
func (r *Repository) GetByID(id uint) (*entities.Garden, error) {
	var garden entities.Garden
	result := r.db.Where("id = ?", id).Limit(1).Find(&garden)
	if result.Error != nil {
		zap.S().Errorf("Database error in GetByID(%d): %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &garden, nil
}

// Create inserts a garden built from in and returns the stored row.
// The insert and the read-back are separate statements.
func (r *Repository) Create(in entities.GardenInput) (*entities.Garden, error) {
	garden := in.Garden()
	if err := r.db.Create(&garden).Error; err != nil {
		zap.S().Errorf("Database error in Create: %v", err)
		return nil, err
	}
	return r.GetByID(garden.ID)
}

// Update replaces all fields of the garden with the given id and returns
// the stored row. Returns nil without error when no row matched.
func (r *Repository) Update(id uint, in entities.GardenInput) (*entities.Garden, error) {
	garden := in.Garden()
	result := r.db.Model(&entities.Garden{}).Where("id = ?", id).Updates(garden.Columns())
	if result.Error != nil {
		zap.S().Errorf("Database error in Update(%d): %v", id, result.Error)
		return nil, result.Error
	}
	return r.GetByID(id)
}

// Delete removes the garden with the given id and returns the number of
// rows removed (0 or 1).
func (r *Repository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&entities.Garden{}, id)
	if result.Error != nil {
		zap.S().Errorf("Database error in Delete(%d): %v", id, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Count returns the number of gardens.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&entities.Garden{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InsertBatch inserts gardens one by one through a single cached prepared
// statement. A failed row is logged and skipped; rows already inserted stay.
func (r *Repository) InsertBatch(gardens []entities.Garden) BatchResult {
	var result BatchResult
	stmt := r.db.Session(&gorm.Session{PrepareStmt: true})

	for i := range gardens {
		garden := gardens[i]
		garden.ID = 0
		if err := stmt.Create(&garden).Error; err != nil {
			zap.S().Warnf("Failed to insert garden %q: %v", garden.Name, err)
			result.Failed++
			continue
		}
		gardens[i].ID = garden.ID
		result.Inserted++
	}
	return result
}
