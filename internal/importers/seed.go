package importers

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// SeedStatus describes what a seeding attempt did.
type SeedStatus string

const (
	SeedCompleted       SeedStatus = "completed"
	SeedSkippedNotEmpty SeedStatus = "skipped_not_empty"
	SeedSkippedNoFile   SeedStatus = "skipped_no_file"
	SeedFailed          SeedStatus = "failed"
)

// SeedStore is what the seeder needs from the gardens repository.
type SeedStore interface {
	Store
	Count() (int64, error)
}

// SeedResult reports the outcome of Seed.
type SeedResult struct {
	Status   SeedStatus
	Existing int64
	ImportResult
}

// Seeder populates an empty gardens table from a JSON file.
type Seeder struct {
	store    SeedStore
	path     string
	pipeline *Pipeline
}

func NewSeeder(store SeedStore, path string) *Seeder {
	return &Seeder{
		store:    store,
		path:     path,
		pipeline: NewPipeline(store),
	}
}

// Seed imports the seed file when the table is empty.
//
// A populated table or a missing file is a skip, not an error. Read and parse
// failures are returned. Rows inserted before a failure are kept.
func (s *Seeder) Seed() (SeedResult, error) {
	count, err := s.store.Count()
	if err != nil {
		return SeedResult{Status: SeedFailed}, fmt.Errorf("failed to count gardens: %w", err)
	}
	zap.S().Infof("Found %d gardens in database", count)

	if count > 0 {
		return SeedResult{Status: SeedSkippedNotEmpty, Existing: count}, nil
	}

	zap.S().Infof("Database is empty. Importing from %s...", s.path)
	converter, err := LoadGardensJSON(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		zap.S().Infof("No seed file found at: %s", s.path)
		return SeedResult{Status: SeedSkippedNoFile}, nil
	}
	if err != nil {
		return SeedResult{Status: SeedFailed}, err
	}
	zap.S().Infof("Found %d gardens in JSON file", len(converter.Records))

	imported := s.pipeline.Import(converter)
	zap.S().Infof("Successfully imported %d gardens from JSON (%d failed)", imported.Imported, imported.Failed)

	return SeedResult{Status: SeedCompleted, ImportResult: imported}, nil
}

// SeedIfEmpty runs Seed and logs any error instead of returning it.
func (s *Seeder) SeedIfEmpty() SeedResult {
	result, err := s.Seed()
	if err != nil {
		zap.S().Errorf("Error importing gardens: %v", err)
	}
	return result
}
