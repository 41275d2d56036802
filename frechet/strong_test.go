package frechet

import (
	"testing"

	"github.com/movetk-go/movetk/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongFrechetDecision(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0, 0), kernel.NewPoint2(10, 0)}
	b := []kernel.Point[float64]{kernel.NewPoint2(0, 1), kernel.NewPoint2(10, 1)}

	tests := map[string]struct {
		epsilon  float64
		expected bool
	}{
		"epsilon covers constant offset":     {epsilon: 1.0, expected: true},
		"epsilon just short of offset":       {epsilon: 0.5, expected: false},
		"large epsilon trivially reachable":  {epsilon: 100, expected: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ok, err := StrongFrechetDecision(a, b, tc.epsilon)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestStrongFrechetDecisionIdenticalPolylines(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0, 0), kernel.NewPoint2(5, 5), kernel.NewPoint2(10, 0)}
	ok, err := StrongFrechetDecision(a, a, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok, "identical polylines must be within any positive epsilon")
}

func TestStrongFrechetDecisionRejectsEmpty(t *testing.T) {
	_, err := StrongFrechetDecision([]kernel.Point[float64]{}, []kernel.Point[float64]{kernel.NewPoint2(0, 0)}, 1.0)
	require.Error(t, err)
}

func TestStrongFrechetBisectionMatchesClosedForm(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0, 0), kernel.NewPoint2(10, 0)}
	b := []kernel.Point[float64]{kernel.NewPoint2(0, 3), kernel.NewPoint2(10, 3)}

	got, err := StrongFrechetBisection(a, b, 1e-6, 100)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-4)
}

func TestStrongFrechetDoubleAndSearchMatchesBisection(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0, 0), kernel.NewPoint2(4, 0), kernel.NewPoint2(8, 2)}
	b := []kernel.Point[float64]{kernel.NewPoint2(0, 1), kernel.NewPoint2(4, 2), kernel.NewPoint2(8, 1)}

	bisected, err := StrongFrechetBisection(a, b, 1e-6, 50)
	require.NoError(t, err)

	doubled, err := StrongFrechetDoubleAndSearch(a, b, 1e-6)
	require.NoError(t, err)

	assert.InDelta(t, bisected, doubled, 1e-3)
}

func TestStrongFrechetMonotoneInEpsilon(t *testing.T) {
	a := []kernel.Point[float64]{kernel.NewPoint2(0, 0), kernel.NewPoint2(3, 4), kernel.NewPoint2(9, 1)}
	b := []kernel.Point[float64]{kernel.NewPoint2(0, 2), kernel.NewPoint2(3, -1), kernel.NewPoint2(9, 3)}

	d, err := StrongFrechetBisection(a, b, 1e-6, 100)
	require.NoError(t, err)

	okBelow, err := StrongFrechetDecision(a, b, d-0.05)
	require.NoError(t, err)
	assert.False(t, okBelow)

	okAbove, err := StrongFrechetDecision(a, b, d+0.05)
	require.NoError(t, err)
	assert.True(t, okAbove)
}
