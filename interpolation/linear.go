// Package interpolation implements probe-pair interpolation (C18, spec
// §4.17): constant-velocity linear interpolation, a cubic kinematic
// interpolator that matches endpoint speed/heading, and a random-midpoint
// trajectory generator constrained by a maximum speed.
package interpolation

import (
	"fmt"

	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/trajectory"
)

// Linear fills in probes at each of timestamps (strictly between u and v's
// own timestamps) by assuming constant velocity between u and v, projecting
// to a local tangent plane centred on u (spec §4.17). Returns u, the
// interpolated samples in timestamp order, and v.
func Linear(u, v trajectory.Probe, timestamps []float64) ([]trajectory.Probe, error) {
	if v.Timestamp <= u.Timestamp {
		return nil, fmt.Errorf("%w: interpolation requires v.Timestamp > u.Timestamp", trajectory.ErrInvalidInput)
	}
	ref := geoproj.NewLocalReference(u.Lat, u.Lon)
	ux, uy := ref.Project(u.Lat, u.Lon)
	vx, vy := ref.Project(v.Lat, v.Lon)

	deltaT := v.Timestamp - u.Timestamp
	out := make([]trajectory.Probe, 0, len(timestamps)+2)
	out = append(out, u)
	for _, ts := range timestamps {
		if ts <= u.Timestamp || ts >= v.Timestamp {
			return nil, fmt.Errorf("%w: interpolation timestamp %v out of range (%v, %v)", trajectory.ErrInvalidInput, ts, u.Timestamp, v.Timestamp)
		}
		fraction := (ts - u.Timestamp) / deltaT
		x := ux + fraction*(vx-ux)
		y := uy + fraction*(vy-uy)
		lat, lon := ref.Inverse(y, x)
		out = append(out, trajectory.NewProbe(lat, lon, ts))
	}
	out = append(out, v)

	attachSpeedsHeadings(out, u, v)
	return out, nil
}

// attachSpeedsHeadings sets interior Speed/Heading to the consecutive
// average computed via trajectory.Speeds/Headings, and endpoint Speed to
// the original u/v value, mirroring the original's get_speeds/get_headings
// post-processing pass (spec §4.17).
func attachSpeedsHeadings(probes []trajectory.Probe, u, v trajectory.Probe) {
	n := len(probes)
	if n < 2 {
		return
	}
	probes[0].Speed = u.Speed
	probes[0].Heading = u.Heading
	probes[n-1].Speed = v.Speed
	probes[n-1].Heading = v.Heading
	if n < 3 {
		return
	}

	speeds := trajectory.Speeds(probes)
	headings := trajectory.Headings(probes)
	for i := 1; i < n-1; i++ {
		s := speeds[i-1]
		probes[i].Speed = &s
		h := headings[i-1]
		probes[i].Heading = &h
	}
}
