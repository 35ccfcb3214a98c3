package exporters

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/gardens/internal/entities"
	"github.com/mrlokans/gardens/internal/importers"
)

type staticReader struct {
	gardens []entities.Garden
	err     error
}

func (r staticReader) GetAll() ([]entities.Garden, error) {
	return r.gardens, r.err
}

var sampleGardens = []entities.Garden{
	{
		ID:                1,
		Name:              "Cottonwood",
		Type:              "Community",
		Neighborhood:      "Strathcona",
		Address:           "Malkin Ave",
		Longitude:         -123.0786,
		Latitude:          49.2733,
		Contact:           "Garden office, 604-555-0101",
		PlotsAvailable:    60,
		YearCreated:       "1991",
		FoodTreeVarieties: "apple",
		Jurisdiction:      "Parks",
		Steward:           "Residents",
		PublicEmail:       "c@example.org",
		Website:           "https://example.org",
		GeoLocalArea:      "Strathcona",
	},
	{
		ID:           2,
		Name:         "Orchard",
		Type:         "Food",
		Neighborhood: "Kitsilano",
		Address:      "No address",
		Longitude:    -123.16,
		Latitude:     49.26,
		Contact:      "No contact",
	},
}

func TestFormatForPath(t *testing.T) {
	format, err := FormatForPath("out/gardens.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = FormatForPath("gardens.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	_, err = FormatForPath("gardens.csv")
	assert.Error(t, err)
}

func TestSnapshotExporter_JSONSeedsFreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "gardens.json")

	result, err := NewSnapshotExporter(staticReader{gardens: sampleGardens}).Export(path)
	require.NoError(t, err)
	assert.Equal(t, ExportResult{Path: path, Format: FormatJSON, Gardens: 2}, result)

	converter, err := importers.LoadGardensJSON(path)
	require.NoError(t, err)
	reimported, _ := converter.Convert()
	require.Len(t, reimported, 2)

	for i, g := range reimported {
		want := sampleGardens[i]
		want.ID = 0
		assert.Equal(t, want, g)
	}
}

func TestSnapshotExporter_JSONRecordShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gardens.json")
	_, err := NewSnapshotExporter(staticReader{gardens: sampleGardens[:1]}).Export(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"lon": -123.0786, "lat": 49.2733}, records[0]["geo_point_2d"])
	assert.Equal(t, "Residents", records[0]["steward_or_managing_organization"])
	assert.Equal(t, "Garden office, 604-555-0101", records[0]["contact"])
	assert.NotContains(t, records[0], "neighbourhood_name")
}

func TestSnapshotExporter_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gardens.xlsx")

	result, err := NewSnapshotExporter(staticReader{gardens: sampleGardens}).Export(path)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, result.Format)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Gardens")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "geo_local_area", rows[0][15])
	assert.Equal(t, "Cottonwood", rows[1][1])
	assert.Equal(t, "Orchard", rows[2][1])
}

func TestSnapshotExporter_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gardens.json")

	result, err := NewSnapshotExporter(staticReader{gardens: []entities.Garden{}}).Export(path)
	require.NoError(t, err)
	assert.Zero(t, result.Gardens)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSnapshotExporter_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewSnapshotExporter(staticReader{}).Export(filepath.Join(dir, "gardens.txt"))
	assert.Error(t, err)

	_, err = NewSnapshotExporter(staticReader{err: errors.New("database is locked")}).Export(filepath.Join(dir, "gardens.json"))
	assert.ErrorContains(t, err, "database is locked")
}
