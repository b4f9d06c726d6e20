package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		min, max               float64
	}{
		{name: "same point", lat1: 24.868978, lon1: 92.364217, lat2: 24.868978, lon2: 92.364217, min: 0, max: 0},
		{name: "delivery sample", lat1: 24.868978, lon1: 92.364217, lat2: 24.862601, lon2: 92.371676, min: 0.9, max: 1.1},
		{name: "antipodal", lat1: 0, lon1: 0, lat2: 0, lon2: 180, min: 20015, max: 20016},
		{name: "antipodal off the equator", lat1: 10, lon1: 20, lat2: -10, lon2: -160, min: 20015, max: 20016},
		{name: "antipodal mid latitude", lat1: 45, lon1: 0, lat2: -45, lon2: 180, min: 20015, max: 20016},
		{name: "antipodal across the date line", lat1: 24.868978, lon1: 92.364217, lat2: -24.868978, lon2: -87.635783, min: 20015, max: 20016},
		{name: "one degree of latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, min: 111.1, max: 111.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestHaversine_NeverNaN(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 15 {
			got := Haversine(lat, lon, -lat, lon+180)
			assert.False(t, math.IsNaN(got), "(%v,%v)", lat, lon)
			assert.InDelta(t, math.Pi*EarthRadiusKm, got, 0.01, "(%v,%v)", lat, lon)
		}
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Haversine(24.868978, 92.364217, 24.862601, 92.371676)
	b := Haversine(24.862601, 92.371676, 24.868978, 92.364217)
	assert.InDelta(t, a, b, 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(24.86, 92.36))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(0, -181))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}
