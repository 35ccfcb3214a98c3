package importers

import (
	"github.com/mrlokans/gardens/internal/database/gardens"
	"github.com/mrlokans/gardens/internal/entities"
)

// Source provides metadata about where imported records came from.
type Source struct {
	Name     string
	FilePath string
}

// Converter transforms source records into gardens ready for insertion.
//
// Implementations:
//   - GardensJSONConverter (gardens_json.go) - city open-data JSON export
type Converter interface {
	Convert() ([]entities.Garden, Source)
}

// Store persists gardens in bulk.
type Store interface {
	InsertBatch(gardens []entities.Garden) gardens.BatchResult
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Source    string `json:"source"`
	Processed int    `json:"processed"`
	Imported  int    `json:"imported"`
	Failed    int    `json:"failed"`
}

// Pipeline handles the common import workflow: convert → insert → count.
type Pipeline struct {
	store Store
}

// NewPipeline creates a new import pipeline with the given store.
func NewPipeline(store Store) *Pipeline {
	return &Pipeline{store: store}
}

// Import converts the records from converter and inserts them.
func (p *Pipeline) Import(converter Converter) ImportResult {
	records, source := converter.Convert()
	result := ImportResult{Source: source.Name, Processed: len(records)}
	if len(records) == 0 {
		return result
	}

	batch := p.store.InsertBatch(records)
	result.Imported = batch.Inserted
	result.Failed = batch.Failed
	return result
}
