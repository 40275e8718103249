package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 40.6782, lng1: -73.9442,
			lat2: 40.6782, lng2: -73.9442,
			want: 0, tolerance: 0.001,
		},
		{
			name: "brooklyn to manhattan",
			lat1: 40.6782, lng1: -73.9442,
			lat2: 40.7831, lng2: -73.9712,
			want: 11900, tolerance: 300,
		},
		{
			name: "new york to los angeles",
			lat1: 40.7128, lng1: -74.0060,
			lat2: 34.0522, lng2: -118.2437,
			want: 3935000, tolerance: 10000,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lng1: 179.5,
			lat2: 0, lng2: -179.5,
			want: 111195, tolerance: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceMetersSymmetric(t *testing.T) {
	d1 := DistanceMeters(40.6782, -73.9442, 40.7831, -73.9712)
	d2 := DistanceMeters(40.7831, -73.9712, 40.6782, -73.9442)
	assert.InDelta(t, d1, d2, 0.0001)
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	const lat, lng, radius = 40.6782, -73.9442, 5000.0
	box := BoundingBoxAround(lat, lng, radius)

	// Рамка грубее круга: любая точка в радиусе обязана попадать в рамку
	points := []struct{ lat, lng float64 }{
		{lat + 0.044, lng},
		{lat - 0.044, lng},
		{lat, lng + 0.058},
		{lat, lng - 0.058},
	}
	for _, p := range points {
		if DistanceMeters(lat, lng, p.lat, p.lng) > radius {
			continue
		}
		assert.GreaterOrEqual(t, p.lat, box.MinLat)
		assert.LessOrEqual(t, p.lat, box.MaxLat)
		assert.GreaterOrEqual(t, p.lng, box.MinLng)
		assert.LessOrEqual(t, p.lng, box.MaxLng)
	}
}

func TestBoundingBoxClampsAtPoles(t *testing.T) {
	box := BoundingBoxAround(89.9, 0, 50000)
	assert.LessOrEqual(t, box.MaxLat, 90.0)
	assert.Equal(t, -180.0, box.MinLng)
	assert.Equal(t, 180.0, box.MaxLng)
}

func TestBoundingBoxSpansAntimeridian(t *testing.T) {
	// Центр у линии перемены дат: точка по другую сторону линии
	// находится в ~22 км и обязана попадать в рамку
	box := BoundingBoxAround(0, 179.9, 50000)

	across := -179.9
	assert.LessOrEqual(t, DistanceMeters(0, 179.9, 0, across), 50000.0)
	assert.GreaterOrEqual(t, across, box.MinLng)
	assert.LessOrEqual(t, across, box.MaxLng)
}
