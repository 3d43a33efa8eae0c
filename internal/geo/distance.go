// Package geo holds the coordinate type and the great-circle distance helpers shared by
// the proxy and the search pipeline.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusKm = 6371.0

// ErrInvalidCoordinate is returned when a coordinate is NaN, infinite or out of range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// String renders the coordinate in the upstream "lat,lng" form.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Distance computes the Haversine distance in kilometres between a and b.
// Invalid input yields ErrInvalidCoordinate rather than a number.
func Distance(a, b Coordinate) (float64, error) {
	if !a.Valid() || !b.Valid() {
		return 0, ErrInvalidCoordinate
	}

	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// ParseLatLng parses a "lat,lng" string as served by the spaces API.
func ParseLatLng(value string) (Coordinate, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("expected <lat>,<lng>, got %q", value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse longitude: %w", err)
	}
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinate{}, ErrInvalidCoordinate
	}
	return c, nil
}

// FormatDistance renders a distance the way the UI cards display it.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km away", km)
}

// Cell returns the geohash of c at the given precision.
func Cell(c Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, precision)
}
