package simplify

import (
	"math"
	"testing"

	"github.com/movetk-go/movetk/frechet"
	"github.com/movetk-go/movetk/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightLineWithSpike() []kernel.Point[float64] {
	return []kernel.Point[float64]{
		kernel.NewPoint2(0, 0),
		kernel.NewPoint2(1, 0.01),
		kernel.NewPoint2(2, 5), // spike
		kernel.NewPoint2(3, 0.01),
		kernel.NewPoint2(4, 0),
	}
}

func TestDouglasPeucker(t *testing.T) {
	pts := straightLineWithSpike()

	tests := map[string]struct {
		epsilon     float64
		expectedLen int
	}{
		"tight epsilon keeps the spike":   {epsilon: 0.001, expectedLen: 5},
		"loose epsilon drops flat points": {epsilon: 1.0, expectedLen: 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := DouglasPeucker(pts, tc.epsilon)
			require.NoError(t, err)
			assert.Len(t, out, tc.expectedLen)
			assert.Equal(t, pts[0], out[0])
			assert.Equal(t, pts[len(pts)-1], out[len(out)-1])
		})
	}
}

// TestDouglasPeuckerFarthestPointAdjacentToRangeEnd regression-tests a
// polyline whose farthest point at the top level sits immediately before
// the range's last index: a recursion that doesn't shrink the range on
// that split stack-overflows instead of terminating.
func TestDouglasPeuckerFarthestPointAdjacentToRangeEnd(t *testing.T) {
	pts := []kernel.Point[float64]{
		kernel.NewPoint2(-6.19, -3.46),
		kernel.NewPoint2(-4.99, 1.16),
		kernel.NewPoint2(-2.79, -2.22),
		kernel.NewPoint2(-1.87, 0.58),
		kernel.NewPoint2(0.77, 0.22),
		kernel.NewPoint2(-1.15, 3.06),
		kernel.NewPoint2(5.33, -1.12),
	}

	out, err := DouglasPeucker(pts, math.Sqrt(10))
	require.NoError(t, err)

	want := []kernel.Point[float64]{pts[0], pts[1], pts[4], pts[5], pts[6]}
	assert.Equal(t, want, out)
}

func TestDouglasPeuckerRejectsEmpty(t *testing.T) {
	_, err := DouglasPeucker([]kernel.Point[float64]{}, 1.0)
	require.Error(t, err)
}

func TestDouglasPeuckerSinglePoint(t *testing.T) {
	pts := []kernel.Point[float64]{kernel.NewPoint2(1, 1)}
	out, err := DouglasPeucker(pts, 1.0)
	require.NoError(t, err)
	assert.Equal(t, pts, out)
}

func TestImaiIri(t *testing.T) {
	pts := straightLineWithSpike()

	out, err := ImaiIri(pts, 0.5)
	require.NoError(t, err)
	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[len(pts)-1], out[len(out)-1])
	assert.LessOrEqual(t, len(out), len(pts))
}

func TestImaiIriLargeEpsilonCollapsesToEndpoints(t *testing.T) {
	pts := []kernel.Point[float64]{
		kernel.NewPoint2(0, 0), kernel.NewPoint2(1, 0.1), kernel.NewPoint2(2, -0.1), kernel.NewPoint2(3, 0),
	}
	out, err := ImaiIri(pts, 10)
	require.NoError(t, err)
	assert.Equal(t, []kernel.Point[float64]{pts[0], pts[3]}, out)
}

func TestAgarwalStaysWithinFrechetBound(t *testing.T) {
	pts := straightLineWithSpike()
	epsilon := 0.8

	out, err := Agarwal(pts, epsilon)
	require.NoError(t, err)
	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[len(pts)-1], out[len(out)-1])

	d, err := frechet.StrongFrechetBisection(pts, out, 1e-6, 100)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, epsilon+1e-3)
}

func TestAgarwalRejectsEmpty(t *testing.T) {
	_, err := Agarwal([]kernel.Point[float64]{}, 1.0)
	require.Error(t, err)
}
