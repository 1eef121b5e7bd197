package models

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	dErrors "wardregistry/pkg/domain-errors"
)

// MinPolygonPoints is the smallest ring that encloses an area.
const MinPolygonPoints = 3

const earthRadiusMeters = 6378137.0

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180 &&
		!math.IsNaN(p.Lat) && !math.IsNaN(p.Lng)
}

// Polygon is an open ring of points in drawing order; the closing edge back to
// the first point is implied.
type Polygon []GeoPoint

func (p Polygon) Valid() bool {
	return len(p) >= MinPolygonPoints
}

// AreaSquareMeters approximates the enclosed area on a spherical earth.
// Invalid polygons have zero area.
func (p Polygon) AreaSquareMeters() float64 {
	if !p.Valid() {
		return 0
	}
	var sum float64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		lng1, lng2 := radians(a.Lng), radians(b.Lng)
		lat1, lat2 := radians(a.Lat), radians(b.Lat)
		sum += (lng2 - lng1) * (2 + math.Sin(lat1) + math.Sin(lat2))
	}
	return math.Abs(sum * earthRadiusMeters * earthRadiusMeters / 2)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ParsePolygon reads pasted coordinate text: one "lat,lng" pair per line, the
// two numbers separated by a comma, tab or spaces. Blank and unparseable lines
// are skipped; the import fails when fewer than three pairs survive.
func ParsePolygon(text string) (Polygon, error) {
	var out Polygon
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		if pt, ok := parsePair(sc.Text()); ok {
			out = append(out, pt)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "failed to read coordinates")
	}
	if len(out) < MinPolygonPoints {
		return nil, dErrors.NewField(dErrors.CodeValidation, "boundary", "at least 3 valid coordinate pairs are required")
	}
	return out, nil
}

func parsePair(line string) (GeoPoint, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t' || r == ' '
	})
	if len(fields) != 2 {
		return GeoPoint{}, false
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return GeoPoint{}, false
	}
	lng, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return GeoPoint{}, false
	}
	pt := GeoPoint{Lat: lat, Lng: lng}
	return pt, pt.Valid()
}
