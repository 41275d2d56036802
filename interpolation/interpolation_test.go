package interpolation

import (
	"math/rand/v2"
	"testing"

	"github.com/movetk-go/movetk/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolatesMidpoint(t *testing.T) {
	u := trajectory.NewProbe(52.0000, 5.0000, 0)
	v := trajectory.NewProbe(52.0010, 5.0010, 10)

	out, err := Linear(u, v, []float64{5})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, u.Lat, out[0].Lat)
	assert.Equal(t, v.Lat, out[2].Lat)
	assert.InDelta(t, 5.0, out[1].Timestamp, 1e-9)
	assert.InDelta(t, (u.Lat+v.Lat)/2, out[1].Lat, 1e-5)
}

func TestLinearRejectsBadTimestamp(t *testing.T) {
	u := trajectory.NewProbe(0, 0, 0)
	v := trajectory.NewProbe(0, 0, 10)
	_, err := Linear(u, v, []float64{20})
	require.Error(t, err)
}

func TestLinearRejectsNonIncreasingEndpoints(t *testing.T) {
	u := trajectory.NewProbe(0, 0, 10)
	v := trajectory.NewProbe(0, 0, 5)
	_, err := Linear(u, v, nil)
	require.Error(t, err)
}

func TestKinematicRequiresSpeedAndHeading(t *testing.T) {
	u := trajectory.NewProbe(52.0, 5.0, 0)
	v := trajectory.NewProbe(52.001, 5.001, 10)
	_, err := Kinematic(u, v, []float64{5})
	require.Error(t, err)
}

func TestKinematicMatchesEndpoints(t *testing.T) {
	u := trajectory.NewProbe(52.0000, 5.0000, 0).WithSpeed(10).WithHeading(45)
	v := trajectory.NewProbe(52.0010, 5.0020, 10).WithSpeed(12).WithHeading(60)

	out, err := Kinematic(u, v, []float64{3, 7})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, u.Lat, out[0].Lat)
	assert.Equal(t, v.Lat, out[len(out)-1].Lat)
	assert.InDelta(t, 3.0, out[1].Timestamp, 1e-9)
	assert.InDelta(t, 7.0, out[2].Timestamp, 1e-9)
}

func TestRandomReturnsEndpointsOnlyWhenNoInteriorTimestamps(t *testing.T) {
	u := trajectory.NewProbe(52.0, 5.0, 0)
	v := trajectory.NewProbe(52.001, 5.001, 10)
	rng := rand.New(rand.NewPCG(1, 2))

	out, err := Random(u, v, nil, 50, rng)
	require.NoError(t, err)
	assert.Equal(t, []trajectory.Probe{u, v}, out)
}

func TestRandomKeepsEndpointsWithInteriorTimestamps(t *testing.T) {
	u := trajectory.NewProbe(52.0000, 5.0000, 0)
	v := trajectory.NewProbe(52.0050, 5.0050, 10)
	rng := rand.New(rand.NewPCG(42, 7))

	out, err := Random(u, v, []float64{3, 5, 7}, 200, rng)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, u.Lat, out[0].Lat)
	assert.Equal(t, v.Lat, out[len(out)-1].Lat)
}
