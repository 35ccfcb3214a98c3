package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mrlokans/gardens/internal/entities"
	"github.com/mrlokans/gardens/internal/geo"
)

// GardenReader provides read-only access to all gardens.
type GardenReader interface {
	GetAll() ([]entities.Garden, error)
}

// ExportResult contains the outcome of a snapshot export.
type ExportResult struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Gardens int    `json:"gardens"`
}

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"

	xlsxSheet = "Gardens"
)

// SnapshotExporter writes every garden to a file. The format follows the
// file extension: .json or .xlsx.
type SnapshotExporter struct {
	reader GardenReader
}

func NewSnapshotExporter(reader GardenReader) *SnapshotExporter {
	return &SnapshotExporter{reader: reader}
}

// FormatForPath returns the snapshot format implied by path.
func FormatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported snapshot extension %q (want .json or .xlsx)", ext)
	}
}

func (e *SnapshotExporter) Export(path string) (ExportResult, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return ExportResult{}, err
	}

	gardens, err := e.reader.GetAll()
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to load gardens: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	switch format {
	case FormatXLSX:
		err = writeXLSX(path, gardens)
	default:
		err = writeJSON(path, gardens)
	}
	if err != nil {
		return ExportResult{}, err
	}

	zap.S().Infof("Exported %d gardens to %s", len(gardens), path)
	return ExportResult{Path: path, Format: format, Gardens: len(gardens)}, nil
}

// SeedRecord is a garden in the seed-file key format, so a JSON snapshot
// can seed a fresh database. Empty name, contact, neighborhood and address
// take the import defaults on re-seed.
type SeedRecord struct {
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	MergedAddress     string     `json:"merged_address"`
	GeoLocalArea      string     `json:"geo_local_area,omitempty"`
	NeighbourhoodName string     `json:"neighbourhood_name,omitempty"`
	GeoPoint2D        geo.LonLat `json:"geo_point_2d"`
	PublicEmail       string     `json:"public_e_mail,omitempty"`
	Contact           string     `json:"contact,omitempty"`
	NumberOfPlots     int        `json:"number_of_plots"`
	YearCreated       string     `json:"year_created,omitempty"`
	FoodTreeVarieties string     `json:"food_tree_varieties,omitempty"`
	Jurisdiction      string     `json:"jurisdiction,omitempty"`
	Steward           string     `json:"steward_or_managing_organization,omitempty"`
	Website           string     `json:"website,omitempty"`
}

// ToSeedRecord maps a stored garden back to source keys.
func ToSeedRecord(g entities.Garden) SeedRecord {
	record := SeedRecord{
		Name:              g.Name,
		Type:              g.Type,
		MergedAddress:     g.Address,
		GeoLocalArea:      g.GeoLocalArea,
		GeoPoint2D:        geo.ToLonLat(g.Point()),
		PublicEmail:       g.PublicEmail,
		Contact:           g.Contact,
		NumberOfPlots:     g.PlotsAvailable,
		YearCreated:       g.YearCreated,
		FoodTreeVarieties: g.FoodTreeVarieties,
		Jurisdiction:      g.Jurisdiction,
		Steward:           g.Steward,
		Website:           g.Website,
	}
	if g.GeoLocalArea != g.Neighborhood {
		record.NeighbourhoodName = g.Neighborhood
	}
	return record
}

func writeJSON(path string, gardens []entities.Garden) error {
	records := make([]SeedRecord, 0, len(gardens))
	for _, g := range gardens {
		records = append(records, ToSeedRecord(g))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

var xlsxHeader = []any{
	"id", "name", "type", "neighborhood", "address", "longitude", "latitude",
	"contact", "plots_available", "year_created", "food_tree_varieties",
	"jurisdiction", "steward", "public_email", "website", "geo_local_area",
}

func xlsxRow(g entities.Garden) []any {
	return []any{
		g.ID, g.Name, g.Type, g.Neighborhood, g.Address, g.Longitude, g.Latitude,
		g.Contact, g.PlotsAvailable, g.YearCreated, g.FoodTreeVarieties,
		g.Jurisdiction, g.Steward, g.PublicEmail, g.Website, g.GeoLocalArea,
	}
}

func writeXLSX(path string, gardens []entities.Garden) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, g := range gardens {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := xlsxRow(g)
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write garden %d: %w", g.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
