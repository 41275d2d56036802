package outlier

import (
	"testing"

	"github.com/movetk-go/movetk/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProbes() []trajectory.Probe {
	// A trajectory with one obvious teleport outlier at index 2.
	return []trajectory.Probe{
		trajectory.NewProbe(52.0000, 5.0000, 0),
		trajectory.NewProbe(52.0010, 5.0010, 10),
		trajectory.NewProbe(10.0000, 80.0000, 20), // outlier: impossible speed
		trajectory.NewProbe(52.0020, 5.0020, 30),
		trajectory.NewProbe(52.0030, 5.0030, 40),
	}
}

func TestGreedyRejectsOutlier(t *testing.T) {
	probes := sampleProbes()
	consistent := GeographicSpeedBound(100) // metres/second

	kept, err := Greedy(probes, consistent)
	require.NoError(t, err)
	assert.NotContains(t, kept, 2)
	assert.Contains(t, kept, 0)
}

func TestGreedyRejectsEmpty(t *testing.T) {
	_, err := Greedy(nil, GeographicSpeedBound(10))
	require.Error(t, err)
}

func TestSmartGreedyAtLeastAsGoodAsGreedy(t *testing.T) {
	probes := sampleProbes()
	consistent := GeographicSpeedBound(100)

	greedy, err := Greedy(probes, consistent)
	require.NoError(t, err)
	smart, err := SmartGreedy(probes, consistent)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(smart), len(greedy))
}

func TestZhengRejectsOutlier(t *testing.T) {
	probes := sampleProbes()
	consistent := GeographicSpeedBound(100)

	kept, err := Zheng(probes, consistent, 2, 2)
	require.NoError(t, err)
	assert.NotContains(t, kept, 2)
}

func TestZhengRejectsBadWindow(t *testing.T) {
	probes := sampleProbes()
	_, err := Zheng(probes, GeographicSpeedBound(10), 0, 1)
	require.Error(t, err)
}

func TestOutputSensitiveExcludesOutlier(t *testing.T) {
	probes := sampleProbes()
	consistent := GeographicSpeedBound(100)

	chain, err := OutputSensitive(probes, consistent)
	require.NoError(t, err)
	assert.NotContains(t, chain, 2)
	assert.True(t, len(chain) >= 2)
	for i := 1; i < len(chain); i++ {
		assert.Less(t, chain[i-1], chain[i])
	}
}

func TestCartesianSpeedBoundRequiresProjection(t *testing.T) {
	a := trajectory.NewProbe(0, 0, 0)
	b := trajectory.NewProbe(0, 0, 1)
	consistent := CartesianSpeedBound(10)
	assert.False(t, consistent(a, b))
}
