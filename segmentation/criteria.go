package segmentation

import (
	"math"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
)

// SpatialCriterion builds a Criterion that holds while the minimum
// enclosing ball of points[first:last] has radius at most theta (spec
// §4.12). The enclosing radius is computed with Ritter's bounding-sphere
// approximation rather than an exact Welzl minimum enclosing ball, since
// the segmentation decision only needs a monotone radius estimate.
func SpatialCriterion[T kernel.Number](points []kernel.Point[T], theta T) Criterion {
	return func(first, last int) bool {
		return enclosingRadius(points[first:last]) <= theta
	}
}

// enclosingRadius approximates the minimum enclosing ball radius of pts via
// Ritter's algorithm: seed from an arbitrary point, find the two extremal
// points of the resulting diameter, then expand the ball to cover stragglers.
func enclosingRadius[T kernel.Number](pts []kernel.Point[T]) T {
	if len(pts) <= 1 {
		return 0
	}
	farthestFrom := func(p kernel.Point[T]) kernel.Point[T] {
		best := pts[0]
		var bestD T
		for i, q := range pts {
			d := geomutil.SqDistPointPoint(p, q)
			if i == 0 || d > bestD {
				bestD, best = d, q
			}
		}
		return best
	}
	a := farthestFrom(pts[0])
	b := farthestFrom(a)

	center := a.Add(b.Sub(a).Scale(T(0.5)))
	radius := math.Sqrt(float64(geomutil.SqDistPointPoint(a, b))) / 2

	for _, p := range pts {
		d := math.Sqrt(float64(geomutil.SqDistPointPoint(p, center)))
		if d > radius {
			newRadius := (radius + d) / 2
			grow := (newRadius - radius) / d
			dir := p.Sub(center)
			center = center.Add(dir.Scale(T(grow)))
			radius = newRadius
		}
	}
	return T(radius)
}

// TemporalCriterion builds a Criterion that holds while max-min of
// values[first:last] is at most theta (spec §4.12): suitable for timestamp
// or generic scalar attribute thresholds.
func TemporalCriterion(values []float64, theta float64) Criterion {
	return func(first, last int) bool {
		lo, hi := values[first], values[first]
		for _, v := range values[first:last] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		return hi-lo <= theta
	}
}

// HeadingCriterion builds a Criterion that holds while every non-zero
// heading in values[first:last] lies within the one-sided range
// [xmin, xmin+theta], where xmin is the minimum non-zero value in range and
// zero values (no measured heading) are ignored (spec §4.12).
func HeadingCriterion(values []float64, theta float64) Criterion {
	return func(first, last int) bool {
		xmin := math.Inf(1)
		for _, v := range values[first:last] {
			if v != 0 && v < xmin {
				xmin = v
			}
		}
		if math.IsInf(xmin, 1) {
			return true // no non-zero headings in range
		}
		for _, v := range values[first:last] {
			if v != 0 && v > xmin+theta {
				return false
			}
		}
		return true
	}
}

// SpeedCriterion builds a Criterion that holds while the max/min ratio of
// values[first:last] is at most theta (spec §4.12).
func SpeedCriterion(values []float64, theta float64) Criterion {
	return func(first, last int) bool {
		lo, hi := values[first], values[first]
		for _, v := range values[first:last] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if lo <= 0 {
			return hi == lo
		}
		return hi/lo <= theta
	}
}
