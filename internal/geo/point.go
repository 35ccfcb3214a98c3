// Package geo extracts garden coordinates from source records.
package geo

import (
	"github.com/paulmach/orb"

	"github.com/mrlokans/gardens/internal/coerce"
)

// FallbackPoint is used for any axis a record does not provide (downtown Vancouver).
var FallbackPoint = orb.Point{-123.1207, 49.2827}

// ParsePoint2D reads a geo_point_2d value.
//
// Two shapes are recognised: an ordered pair, read as [latitude, longitude],
// and an object with "lon" and "lat" members. Values are kept as given, with
// no range check; each axis that is missing or non-numeric takes the
// matching axis of fallback.
func ParsePoint2D(v any, fallback orb.Point) orb.Point {
	var lonRaw, latRaw any

	switch t := v.(type) {
	case []any:
		if len(t) > 0 {
			latRaw = t[0]
		}
		if len(t) > 1 {
			lonRaw = t[1]
		}
	case map[string]any:
		lonRaw = t["lon"]
		latRaw = t["lat"]
	}

	point := fallback
	if lon, ok := coerce.Float(lonRaw); ok {
		point[0] = lon
	}
	if lat, ok := coerce.Float(latRaw); ok {
		point[1] = lat
	}
	return point
}

// LonLat is the object form of geo_point_2d.
type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func ToLonLat(p orb.Point) LonLat {
	return LonLat{Lon: p.Lon(), Lat: p.Lat()}
}
