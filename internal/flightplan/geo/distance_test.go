package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference implementation of the formula, used to pin the library output
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dlat := rad(lat2) - rad(lat1)
	dlon := rad(lon2) - rad(lon1)
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func TestDistanceKmKnownRoutes(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{"ULLI-UUEE", 59.8003, 30.2625, 55.9726, 37.4146, 599.29, 0.01},
		{"quarter meridian", 0, 0, 90, 0, math.Pi / 2 * EarthRadiusKm, 1e-6},
		{"antipodes on equator", 0, -180, 0, 0, math.Pi * EarthRadiusKm, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.delta)
			assert.InDelta(t, haversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2), got, 1e-6)
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	points := [][2]float64{
		{55.9726, 37.4146},
		{55.9736, 37.4125},
		{-33.9461, 151.1772},
		{40.6413, -73.7781},
		{90, 180},
		{-90, -180},
	}
	for _, a := range points {
		for _, b := range points {
			ab, err := DistanceKm(a[0], a[1], b[0], b[1])
			require.NoError(t, err)
			ba, err := DistanceKm(b[0], b[1], a[0], a[1])
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9)
		}
	}
}

func TestDistanceKmSamePoint(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {55.9726, 37.4146}, {-90, 180}, {12.5, -170.25}} {
		got, err := DistanceKm(p[0], p[1], p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	}
}

func TestDistanceKmInvalidCoordinate(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"lat above range", 91, 0, 0, 0},
		{"lat below range", 0, 0, -90.0001, 0},
		{"lon above range", 0, 180.5, 0, 0},
		{"lon below range", 0, 0, 0, -181},
		{"nan latitude", math.NaN(), 0, 0, 0},
		{"infinite longitude", 0, 0, 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
			assert.Zero(t, got)
		})
	}
}
