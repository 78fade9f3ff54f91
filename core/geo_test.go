package core

import (
	"testing"

	"github.com/safecity/crimelens/schema"
	"github.com/stretchr/testify/assert"
)

// TestDistanceKmZero verifies identical points resolve to zero distance.
func TestDistanceKmZero(t *testing.T) {
	points := []schema.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 23.8103, Lng: 90.4125},
		{Lat: -45.5, Lng: 170.2},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

// TestDistanceKmSymmetry verifies distance is direction independent.
func TestDistanceKmSymmetry(t *testing.T) {
	a := schema.LatLng{Lat: 23.8103, Lng: 90.4125}
	b := schema.LatLng{Lat: 23.7511, Lng: 90.3934}
	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

// TestDistanceKmEquator cross-checks one degree of longitude at the equator,
// which is roughly 111 km on a 6371 km sphere.
func TestDistanceKmEquator(t *testing.T) {
	d := DistanceKm(schema.LatLng{Lat: 0, Lng: 0}, schema.LatLng{Lat: 0, Lng: 1})
	assert.InDelta(t, 111.19, d, 0.1)
}

// TestDistanceKmKnownPair checks a known city pair at coarse precision.
func TestDistanceKmKnownPair(t *testing.T) {
	dhaka := schema.LatLng{Lat: 23.8103, Lng: 90.4125}
	chittagong := schema.LatLng{Lat: 22.3569, Lng: 91.7832}
	d := DistanceKm(dhaka, chittagong)
	assert.InDelta(t, 214, d, 8)
}

// FuzzDistanceKm asserts non-negativity and symmetry over arbitrary inputs.
func FuzzDistanceKm(f *testing.F) {
	f.Add(0.0, 0.0, 0.0, 1.0)
	f.Add(23.8103, 90.4125, 22.3569, 91.7832)
	f.Add(-90.0, -180.0, 90.0, 180.0)

	f.Fuzz(func(t *testing.T, lat1, lng1, lat2, lng2 float64) {
		a := schema.LatLng{Lat: lat1, Lng: lng1}
		b := schema.LatLng{Lat: lat2, Lng: lng2}
		d := DistanceKm(a, b)
		if d < 0 {
			t.Fatalf("negative distance %v", d)
		}
		if rev := DistanceKm(b, a); d != rev {
			// Allow for floating noise only.
			if diff := d - rev; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("asymmetric distance: %v vs %v", d, rev)
			}
		}
	})
}

// BenchmarkDistanceKm benchmarks the haversine kernel.
func BenchmarkDistanceKm(b *testing.B) {
	p1 := schema.LatLng{Lat: 23.8103, Lng: 90.4125}
	p2 := schema.LatLng{Lat: 22.3569, Lng: 91.7832}
	for b.Loop() {
		DistanceKm(p1, p2)
	}
}
