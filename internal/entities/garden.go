package entities

import (
	"encoding/json"

	"github.com/paulmach/orb"

	"github.com/mrlokans/gardens/internal/coerce"
)

// Garden is one row of the gardens table.
type Garden struct {
	ID                uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Neighborhood      string  `json:"neighborhood"`
	Address           string  `json:"address"`
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
	Contact           string  `json:"contact"`
	PlotsAvailable    int     `json:"plots_available"`
	YearCreated       string  `json:"year_created"`
	FoodTreeVarieties string  `json:"food_tree_varieties"`
	Jurisdiction      string  `json:"jurisdiction"`
	Steward           string  `json:"steward"`
	PublicEmail       string  `json:"public_email"`
	Website           string  `json:"website"`
	GeoLocalArea      string  `json:"geo_local_area"`
}

func (Garden) TableName() string {
	return "gardens"
}

// Point returns the garden location as an orb point (lon, lat).
func (g Garden) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// Columns returns every non-id column keyed by column name.
// Map updates write zero values, which struct updates would skip.
func (g Garden) Columns() map[string]any {
	return map[string]any{
		"name":                g.Name,
		"type":                g.Type,
		"neighborhood":        g.Neighborhood,
		"address":             g.Address,
		"longitude":           g.Longitude,
		"latitude":            g.Latitude,
		"contact":             g.Contact,
		"plots_available":     g.PlotsAvailable,
		"year_created":        g.YearCreated,
		"food_tree_varieties": g.FoodTreeVarieties,
		"jurisdiction":        g.Jurisdiction,
		"steward":             g.Steward,
		"public_email":        g.PublicEmail,
		"website":             g.Website,
		"geo_local_area":      g.GeoLocalArea,
	}
}

// GardenInput carries the field values for create and update requests.
// A nil field was not supplied (or could not be parsed).
type GardenInput struct {
	Name              *string  `json:"name,omitempty"`
	Type              *string  `json:"type,omitempty"`
	Neighborhood      *string  `json:"neighborhood,omitempty"`
	Address           *string  `json:"address,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Contact           *string  `json:"contact,omitempty"`
	PlotsAvailable    *int     `json:"plots_available,omitempty"`
	YearCreated       *string  `json:"year_created,omitempty"`
	FoodTreeVarieties *string  `json:"food_tree_varieties,omitempty"`
	Jurisdiction      *string  `json:"jurisdiction,omitempty"`
	Steward           *string  `json:"steward,omitempty"`
	PublicEmail       *string  `json:"public_email,omitempty"`
	Website           *string  `json:"website,omitempty"`
	GeoLocalArea      *string  `json:"geo_local_area,omitempty"`
}

// UnmarshalJSON decodes each field with the coerce parsers, so numeric
// strings are accepted for numbers and values of the wrong shape are dropped
// instead of failing the whole request.
func (in *GardenInput) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*in = GardenInputFromMap(raw)
	return nil
}

// GardenInputFromMap builds an input from a decoded JSON object.
// Text values are kept exactly as sent.
func GardenInputFromMap(raw map[string]any) GardenInput {
	str := func(key string) *string {
		if s, ok := coerce.Text(raw[key]); ok {
			return &s
		}
		return nil
	}
	num := func(key string) *float64 {
		if f, ok := coerce.Float(raw[key]); ok {
			return &f
		}
		return nil
	}
	var plots *int
	if n, ok := coerce.Int(raw["plots_available"]); ok {
		plots = &n
	}

	return GardenInput{
		Name:              str("name"),
		Type:              str("type"),
		Neighborhood:      str("neighborhood"),
		Address:           str("address"),
		Longitude:         num("longitude"),
		Latitude:          num("latitude"),
		Contact:           str("contact"),
		PlotsAvailable:    plots,
		YearCreated:       str("year_created"),
		FoodTreeVarieties: str("food_tree_varieties"),
		Jurisdiction:      str("jurisdiction"),
		Steward:           str("steward"),
		PublicEmail:       str("public_email"),
		Website:           str("website"),
		GeoLocalArea:      str("geo_local_area"),
	}
}

// Garden applies the direct-entry defaults: "" for text and 0 for numbers.
// The returned garden has no ID.
func (in GardenInput) Garden() Garden {
	return Garden{
		Name:              deref(in.Name),
		Type:              deref(in.Type),
		Neighborhood:      deref(in.Neighborhood),
		Address:           deref(in.Address),
		Longitude:         deref(in.Longitude),
		Latitude:          deref(in.Latitude),
		Contact:           deref(in.Contact),
		PlotsAvailable:    deref(in.PlotsAvailable),
		YearCreated:       deref(in.YearCreated),
		FoodTreeVarieties: deref(in.FoodTreeVarieties),
		Jurisdiction:      deref(in.Jurisdiction),
		Steward:           deref(in.Steward),
		PublicEmail:       deref(in.PublicEmail),
		Website:           deref(in.Website),
		GeoLocalArea:      deref(in.GeoLocalArea),
	}
}

// InputFromGarden returns an input that sets every field of g.
func InputFromGarden(g Garden) GardenInput {
	return GardenInput{
		Name:              &g.Name,
		Type:              &g.Type,
		Neighborhood:      &g.Neighborhood,
		Address:           &g.Address,
		Longitude:         &g.Longitude,
		Latitude:          &g.Latitude,
		Contact:           &g.Contact,
		PlotsAvailable:    &g.PlotsAvailable,
		YearCreated:       &g.YearCreated,
		FoodTreeVarieties: &g.FoodTreeVarieties,
		Jurisdiction:      &g.Jurisdiction,
		Steward:           &g.Steward,
		PublicEmail:       &g.PublicEmail,
		Website:           &g.Website,
		GeoLocalArea:      &g.GeoLocalArea,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
