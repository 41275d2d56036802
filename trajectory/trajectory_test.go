package trajectory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonotoneAcceptsIncreasing(t *testing.T) {
	probes := []Probe{NewProbe(0, 0, 0), NewProbe(0, 0, 1), NewProbe(0, 0, 2)}
	assert.NoError(t, ValidateMonotone(probes))
}

func TestValidateMonotoneRejectsNonIncreasing(t *testing.T) {
	probes := []Probe{NewProbe(0, 0, 0), NewProbe(0, 0, 0)}
	err := ValidateMonotone(probes)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestWithSpeedHeadingProjected(t *testing.T) {
	p := NewProbe(1, 2, 3).WithSpeed(10).WithHeading(45)
	require.NotNil(t, p.Speed)
	require.NotNil(t, p.Heading)
	assert.InDelta(t, 10.0, *p.Speed, 1e-9)
	assert.InDelta(t, 45.0, *p.Heading, 1e-9)
	assert.Nil(t, p.Projected)
}

func TestTimeDiffsAndDistancesAndSpeeds(t *testing.T) {
	probes := []Probe{
		NewProbe(52.0000, 5.0000, 0),
		NewProbe(52.0010, 5.0010, 10),
	}
	dt := TimeDiffs(probes)
	require.Len(t, dt, 1)
	assert.InDelta(t, 10.0, dt[0], 1e-9)

	dist := Distances(probes)
	require.Len(t, dist, 1)
	assert.Greater(t, dist[0], 0.0)

	speeds := Speeds(probes)
	require.Len(t, speeds, 1)
	assert.InDelta(t, dist[0]/10.0, speeds[0], 1e-9)
}

func TestHeadingsEmptyForSingleProbe(t *testing.T) {
	assert.Nil(t, Headings([]Probe{NewProbe(0, 0, 0)}))
	assert.Nil(t, Distances([]Probe{NewProbe(0, 0, 0)}))
	assert.Nil(t, TimeDiffs([]Probe{NewProbe(0, 0, 0)}))
}

func TestIsSequence(t *testing.T) {
	assert.True(t, IsSequence([]int{1, 2, 3}))
	assert.True(t, IsSequence([]int{3, 1, 2}))
	assert.False(t, IsSequence([]int{1, 1, 3}))
}

func TestMinNonZeroElement(t *testing.T) {
	min, ok := MinNonZeroElement([]float64{0, -1, 5, 2})
	require.True(t, ok)
	assert.InDelta(t, 2.0, min, 1e-9)

	_, ok = MinNonZeroElement([]float64{0, -1, -2})
	assert.False(t, ok)
}

func TestMergeIntervals(t *testing.T) {
	ivs := []Interval{{0, 5}, {3, 8}, {10, 12}}
	merged := MergeIntervals(ivs)
	require.Len(t, merged, 2)
	assert.Equal(t, Interval{0, 8}, merged[0])
	assert.Equal(t, Interval{10, 12}, merged[1])
}

func TestMergeIntervalsEmpty(t *testing.T) {
	assert.Empty(t, MergeIntervals(nil))
}

func TestDominantTimeDifference(t *testing.T) {
	// Timestamps 0,10,20,30,41: diffs 10,10,10,11. With tau=0.5 the three
	// identical 10s dominate.
	ts := []float64{0, 10, 20, 30, 41}
	dt, err := DominantTimeDifference(ts, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, dt, 1e-9)
}

func TestDominantTimeDifferenceRejectsTooFewTimestamps(t *testing.T) {
	_, err := DominantTimeDifference([]float64{5}, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
