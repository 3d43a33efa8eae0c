package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bangalore   = Coordinate{Lat: 12.9716, Lng: 77.5946}
	mumbai      = Coordinate{Lat: 19.0760, Lng: 72.8777}
	koramangala = Coordinate{Lat: 12.9304278, Lng: 77.678404}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         bangalore,
			b:         bangalore,
			expected:  0,
			tolerance: 1e-6,
		},
		{
			name:      "Bangalore to Mumbai",
			a:         bangalore,
			b:         mumbai,
			expected:  845.3,
			tolerance: 1.0,
		},
		{
			name:      "Koramangala to Bangalore centre",
			a:         koramangala,
			b:         bangalore,
			expected:  10.17,
			tolerance: 0.05,
		},
		{
			name:      "antimeridian crossing",
			a:         Coordinate{Lat: 0, Lng: 179.5},
			b:         Coordinate{Lat: 0, Lng: -179.5},
			expected:  111.2,
			tolerance: 0.5,
		},
		{
			name:      "pole to pole",
			a:         Coordinate{Lat: 90, Lng: 0},
			b:         Coordinate{Lat: -90, Lng: 0},
			expected:  math.Pi * earthRadiusKm,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []Coordinate{
		bangalore,
		mumbai,
		koramangala,
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 51.5074, Lng: -0.1278},
		{Lat: 0, Lng: 0},
	}
	for _, a := range points {
		for _, b := range points {
			ab, err := Distance(a, b)
			require.NoError(t, err)
			ba, err := Distance(b, a)
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9, "distance(%v,%v) != distance(%v,%v)", a, b, b, a)
		}
	}
}

func TestDistance_InvalidInput(t *testing.T) {
	invalid := map[string]Coordinate{
		"nan latitude":       {Lat: math.NaN(), Lng: 77},
		"nan longitude":      {Lat: 12, Lng: math.NaN()},
		"latitude too high":  {Lat: 90.0001, Lng: 0},
		"latitude too low":   {Lat: -91, Lng: 0},
		"longitude too high": {Lat: 0, Lng: 180.5},
		"longitude too low":  {Lat: 0, Lng: -181},
		"infinite":           {Lat: math.Inf(1), Lng: 0},
	}
	for name, c := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := Distance(c, bangalore)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
			_, err = Distance(bangalore, c)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestParseLatLng(t *testing.T) {
	c, err := ParseLatLng("12.9304278, 77.678404")
	require.NoError(t, err)
	assert.Equal(t, koramangala, c)

	for _, input := range []string{"", "12.9", "a,b", "12.9,77.6,1", "95,10", "10,200"} {
		_, err := ParseLatLng(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "4.9 km away", FormatDistance(4.94))
	assert.Equal(t, "0.0 km away", FormatDistance(0))
	assert.Equal(t, "12.3 km away", FormatDistance(12.25001))
}

func TestCell(t *testing.T) {
	cell := Cell(koramangala, 8)
	assert.Len(t, cell, 8)
	assert.Equal(t, cell[:5], Cell(Coordinate{Lat: 12.9305, Lng: 77.6785}, 5))
	assert.NotEqual(t, cell, Cell(mumbai, 8))
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "12.9304278,77.678404", koramangala.String())
}
