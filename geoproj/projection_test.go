package geoproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectInverseRoundTrip(t *testing.T) {
	ref := NewLocalReference(52.0, 5.0)
	x, y := ref.Project(52.001, 5.001)
	lat, lon := ref.Inverse(y, x)
	assert.InDelta(t, 52.001, lat, 1e-6)
	assert.InDelta(t, 5.001, lon, 1e-6)
}

func TestProjectOriginIsZero(t *testing.T) {
	ref := NewLocalReference(52.0, 5.0)
	x, y := ref.Project(52.0, 5.0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, Haversine(52.0, 5.0, 52.0, 5.0), 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is ~111.2 km.
	d := Haversine(0, 0, 1, 0)
	assert.InDelta(t, 111195.0, d, 500)
}

func TestBearingCardinalDirections(t *testing.T) {
	assert.InDelta(t, 0.0, Bearing(0, 0, 1, 0), 1e-6)   // due north
	assert.InDelta(t, 90.0, Bearing(0, 0, 0, 1), 1e-6)  // due east
	assert.InDelta(t, 180.0, Bearing(1, 0, 0, 0), 1e-6) // due south
}

func TestBearingNormalisedToPositiveRange(t *testing.T) {
	b := Bearing(0, 0, 0, -1) // due west
	assert.InDelta(t, 270.0, b, 1e-6)
	assert.GreaterOrEqual(t, b, 0.0)
	assert.Less(t, b, 360.0)
}
