package interpolation

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/trajectory"
)

// Kinematic interpolates between u and v with a cubic polynomial derived
// from their endpoint velocities (speed, heading), rather than assuming
// constant velocity (spec §4.17, based on Laube & Purves 2015). Each
// coordinate's position is p(tau) = p_u + v_u*tau + b*tau^2/2 + m*tau^3/6,
// with m and b solved from the endpoint displacement and velocity change.
// When the velocity barely changes but the endpoints differ, v's speed is
// recomputed as |Δp|/Δt to avoid a degenerate null-velocity solve.
func Kinematic(u, v trajectory.Probe, timestamps []float64) ([]trajectory.Probe, error) {
	if v.Timestamp <= u.Timestamp {
		return nil, fmt.Errorf("%w: interpolation requires v.Timestamp > u.Timestamp", trajectory.ErrInvalidInput)
	}
	if u.Speed == nil || u.Heading == nil || v.Speed == nil || v.Heading == nil {
		return nil, fmt.Errorf("%w: kinematic interpolation requires speed and heading on both endpoints", trajectory.ErrInvalidInput)
	}

	ref := geoproj.NewLocalReference(u.Lat, u.Lon)
	ux, uy := ref.Project(u.Lat, u.Lon)
	vx, vy := ref.Project(v.Lat, v.Lon)

	vuX, vuY := velocityXY(*u.Speed, *u.Heading)
	vSpeed := *v.Speed
	dpX, dpY := vx-ux, vy-uy

	deltaT := v.Timestamp - u.Timestamp
	if sqNorm(vSpeed*math.Sin(radians(*v.Heading))-vuX, vSpeed*math.Cos(radians(*v.Heading))-vuY) < 1e-18 &&
		sqNorm(dpX, dpY) > 1e-18 {
		vSpeed = math.Sqrt(dpX*dpX+dpY*dpY) / deltaT
	}
	vvX, vvY := velocityXY(vSpeed, *v.Heading)

	dvX, dvY := vvX-vuX, vvY-vuY
	dt2 := deltaT * deltaT
	dt3 := dt2 * deltaT
	denom := dt3/6 - dt2/4

	mX := (dpX - vuX*deltaT - dvX/2) / denom
	mY := (dpY - vuY*deltaT - dvY/2) / denom
	bX := dvX/dt2 - mX/2
	bY := dvY/dt2 - mY/2

	out := make([]trajectory.Probe, 0, len(timestamps)+2)
	out = append(out, u)
	for _, ts := range timestamps {
		if ts <= u.Timestamp || ts >= v.Timestamp {
			return nil, fmt.Errorf("%w: interpolation timestamp %v out of range (%v, %v)", trajectory.ErrInvalidInput, ts, u.Timestamp, v.Timestamp)
		}
		tau := ts - u.Timestamp
		tau2 := tau * tau
		tau3 := tau2 * tau
		x := ux + vuX*tau + bX*tau2/2 + mX*tau3/6
		y := uy + vuY*tau + bY*tau2/2 + mY*tau3/6
		lat, lon := ref.Inverse(y, x)
		out = append(out, trajectory.NewProbe(lat, lon, ts))
	}
	out = append(out, v)

	attachSpeedsHeadings(out, u, v.WithSpeed(vSpeed))
	return out, nil
}

func velocityXY(speed, headingDeg float64) (x, y float64) {
	r := radians(headingDeg)
	return speed * math.Sin(r), speed * math.Cos(r)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func sqNorm(x, y float64) float64 { return x*x + y*y }
