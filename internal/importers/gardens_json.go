package importers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/gardens/internal/coerce"
	"github.com/mrlokans/gardens/internal/entities"
	"github.com/mrlokans/gardens/internal/geo"
)

// Defaults applied when a source record has no usable value.
const (
	DefaultGardenName   = "Unknown Garden"
	DefaultNeighborhood = "Unknown"
	DefaultAddress      = "No address"
	DefaultContact      = "No contact"

	TypeCommunity = "Community"
	TypeFood      = "Food"
)

// RawRecord is one element of the seed JSON array.
type RawRecord map[string]any

// Fields returns the "fields" object when the record wraps its values,
// otherwise the record itself.
func (r RawRecord) Fields() map[string]any {
	if inner, ok := r["fields"].(map[string]any); ok {
		return inner
	}
	return r
}

// GardensJSONConverter converts seed-file records to gardens.
type GardensJSONConverter struct {
	Records  []RawRecord
	FilePath string
}

func NewGardensJSONConverter(records []RawRecord) *GardensJSONConverter {
	return &GardensJSONConverter{Records: records}
}

// ParseGardensJSON decodes a JSON array of records.
func ParseGardensJSON(data []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse gardens JSON: %w", err)
	}
	return records, nil
}

// LoadGardensJSON reads and decodes the file at path.
// The returned error wraps fs.ErrNotExist when the file is missing.
func LoadGardensJSON(path string) (*GardensJSONConverter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	records, err := ParseGardensJSON(data)
	if err != nil {
		return nil, err
	}
	return &GardensJSONConverter{Records: records, FilePath: path}, nil
}

func (c *GardensJSONConverter) Convert() ([]entities.Garden, Source) {
	gardens := make([]entities.Garden, 0, len(c.Records))
	for _, record := range c.Records {
		gardens = append(gardens, NormalizeGarden(record.Fields()))
	}
	return gardens, Source{Name: "gardens_json", FilePath: c.FilePath}
}

// NormalizeGarden resolves every garden column from a flat source record.
func NormalizeGarden(data map[string]any) entities.Garden {
	name, ok := coerce.FirstString(data["name"], data["merged_address"])
	if !ok {
		name = DefaultGardenName
	}

	gardenType, ok := coerce.String(data["type"])
	if !ok {
		gardenType = TypeFood
		if _, hasJurisdiction := coerce.String(data["jurisdiction"]); hasJurisdiction {
			gardenType = TypeCommunity
		}
	}

	neighborhood, ok := coerce.FirstString(data["geo_local_area"], data["neighbourhood_name"])
	if !ok {
		neighborhood = DefaultNeighborhood
	}

	address, ok := coerce.String(data["merged_address"])
	if !ok {
		street := strings.TrimSpace(coerce.StringOr(data["street_number"], "") + " " + coerce.StringOr(data["street_name"], ""))
		address = street
		if address == "" {
			address = DefaultAddress
		}
	}

	contact, ok := coerce.FirstString(data["contact"], data["public_e_mail"])
	if !ok {
		contact = DefaultContact
	}

	point := geo.ParsePoint2D(data["geo_point_2d"], geo.FallbackPoint)

	return entities.Garden{
		Name:              name,
		Type:              gardenType,
		Neighborhood:      neighborhood,
		Address:           address,
		Longitude:         point.Lon(),
		Latitude:          point.Lat(),
		Contact:           contact,
		PlotsAvailable:    coerce.IntOr(data["number_of_plots"], 0),
		YearCreated:       coerce.StringOr(data["year_created"], ""),
		FoodTreeVarieties: coerce.StringOr(data["food_tree_varieties"], ""),
		Jurisdiction:      coerce.StringOr(data["jurisdiction"], ""),
		Steward:           coerce.StringOr(data["steward_or_managing_organization"], ""),
		PublicEmail:       coerce.StringOr(data["public_e_mail"], ""),
		Website:           coerce.StringOr(data["website"], ""),
		GeoLocalArea:      coerce.StringOr(data["geo_local_area"], ""),
	}
}
