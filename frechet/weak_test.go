package frechet

import (
	"testing"

	"github.com/movetk-go/movetk/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(xs ...float64) []kernel.Point[float64] {
	out := make([]kernel.Point[float64], len(xs))
	for i, x := range xs {
		out[i] = kernel.NewPoint2(x, 0.0)
	}
	return out
}

func TestWeakFrechetIdenticalPolylinesIsZero(t *testing.T) {
	a := pts(0, 1, 2, 3)
	d, _, err := WeakFrechet[float64](a, a, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestWeakFrechetConstantOffset(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0.0, 0.0), kernel.NewPoint2(10.0, 0.0)}
	b := []kernel.Point[float64]{kernel.NewPoint2(0.0, 3.0), kernel.NewPoint2(10.0, 3.0)}
	d, _, err := WeakFrechet[float64](a, b, false)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-6)
}

func TestWeakFrechetRejectsEmpty(t *testing.T) {
	_, _, err := WeakFrechet[float64](nil, pts(0), false)
	require.Error(t, err)
}

func TestWeakFrechetDegenerateSinglePoint(t *testing.T) {
	a := pts(5)
	b := pts(0, 10)
	d, _, err := WeakFrechet[float64](a, b, false)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestWeakFrechetMatchingStartsWithSentinel(t *testing.T) {
	a := pts(0, 1, 2)
	b := pts(0, 1, 2)
	_, matching, err := WeakFrechet[float64](a, b, true)
	require.NoError(t, err)
	require.NotEmpty(t, matching)
	assert.Equal(t, -1, matching[0].I)
	assert.Equal(t, -1, matching[0].J)
}

func TestWeakFrechetNoMatchingWhenNotRequested(t *testing.T) {
	a := pts(0, 1, 2)
	b := pts(0, 1, 2)
	_, matching, err := WeakFrechet[float64](a, b, false)
	require.NoError(t, err)
	assert.Nil(t, matching)
}
