// Package outlier implements consistency-predicate-based outlier detection
// (C17, spec §4.16): a binary consistency predicate over probe pairs, and
// four strategies for extracting a maximal mutually-consistent subsequence
// (Greedy, Smart-greedy, Zheng sliding-window, and an output-sensitive
// longest-chain search).
package outlier

import (
	"math"

	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/trajectory"
)

// Predicate reports whether two probes are consistent with one another,
// i.e. not evidence that one of them is an outlier.
type Predicate func(a, b trajectory.Probe) bool

// GeographicSpeedBound builds a Predicate that rejects a probe pair whose
// constant haversine speed between them exceeds vmax, grounded on the
// geographic-coordinate linear speed bound test (spec §4.16).
func GeographicSpeedBound(vmax float64) Predicate {
	return func(a, b trajectory.Probe) bool {
		dt := math.Abs(b.Timestamp - a.Timestamp)
		if dt == 0 {
			return true
		}
		d := geoproj.Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
		return d/dt <= vmax
	}
}

// CartesianSpeedBound builds a Predicate identical to GeographicSpeedBound
// but measured over already-projected Cartesian coordinates (spec §4.16).
// Probes must carry a non-nil Projected field.
func CartesianSpeedBound(vmax float64) Predicate {
	return func(a, b trajectory.Probe) bool {
		dt := math.Abs(b.Timestamp - a.Timestamp)
		if dt == 0 {
			return true
		}
		if a.Projected == nil || b.Projected == nil {
			return false
		}
		v := b.Projected.Sub(*a.Projected)
		d := math.Sqrt(float64(v.Dot(v)))
		return d/dt <= vmax
	}
}
