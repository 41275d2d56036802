package segmentation

import (
	"testing"

	"github.com/movetk-go/movetk/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotoneBreakpoints(t *testing.T) {
	values := []float64{0, 1, 2, 3, 10, 11, 12, 30, 31}
	ok := TemporalCriterion(values, 3)

	breakpoints, err := MonotoneBreakpoints(len(values), ok)
	require.NoError(t, err)
	require.NotEmpty(t, breakpoints)
	assert.Equal(t, len(values)-1, breakpoints[len(breakpoints)-1])
	for _, b := range breakpoints {
		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, len(values))
	}
}

func TestMonotoneBreakpointsSinglePoint(t *testing.T) {
	ok := TemporalCriterion([]float64{5}, 1)
	breakpoints, err := MonotoneBreakpoints(1, ok)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, breakpoints)
}

func TestMonotoneBreakpointsRejectsEmpty(t *testing.T) {
	ok := TemporalCriterion(nil, 1)
	_, err := MonotoneBreakpoints(0, ok)
	require.Error(t, err)
}

func TestMonotoneBreakpointsNeverStalls(t *testing.T) {
	// A criterion that only ever holds for single-point ranges forces the
	// a==1 forward-progress guarantee in MonotoneBreakpoints.
	neverExtends := func(first, last int) bool { return last-first <= 1 }
	breakpoints, err := MonotoneBreakpoints(6, neverExtends)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, breakpoints)
}

func TestSpatialCriterion(t *testing.T) {
	pts := []kernel.Point[float64]{
		kernel.NewPoint2(0, 0), kernel.NewPoint2(1, 0), kernel.NewPoint2(0, 1), kernel.NewPoint2(20, 20),
	}
	ok := SpatialCriterion(pts, 2.0)
	assert.True(t, ok(0, 3))
	assert.False(t, ok(0, 4))
}

func TestHeadingCriterionIgnoresZeros(t *testing.T) {
	values := []float64{0, 10, 0, 12, 100}
	ok := HeadingCriterion(values, 5)
	assert.True(t, ok(0, 4))
	assert.False(t, ok(0, 5))
}

func TestSpeedCriterion(t *testing.T) {
	values := []float64{1, 1.5, 2, 10}
	ok := SpeedCriterion(values, 2.5)
	assert.True(t, ok(0, 3))
	assert.False(t, ok(0, 4))
}

func TestModelBasedSegmentation(t *testing.T) {
	rows := []float64{0, 0.1, 0.2, 5.0, 5.1, 5.2}
	cols := []float64{0, 5}
	ll := func(row, col float64) float64 {
		d := row - col
		return -d * d
	}

	breakpoints, err := ModelBasedSegmentation(rows, cols, ll, 0.01)
	require.NoError(t, err)
	require.NotEmpty(t, breakpoints)
	assert.Equal(t, len(rows)-1, breakpoints[len(breakpoints)-1])
}

func TestModelBasedSegmentationRejectsEmpty(t *testing.T) {
	_, err := ModelBasedSegmentation[float64, float64](nil, []float64{0}, func(r, c float64) float64 { return 0 }, 1)
	require.Error(t, err)
}
