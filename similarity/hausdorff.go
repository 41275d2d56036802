// Package similarity implements the discrete similarity measures (C6:
// Hausdorff, discrete Fréchet, DTW) and LCSS (C9) of spec §4.5 and §4.8.
package similarity

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// DiscreteHausdorff returns max(h(A,B), h(B,A)) where
// h(X,Y) = max_{x in X} min_{y in Y} ||x-y|| (spec §4.5). O(nm).
//
// Per spec §7/§9, empty input returns (0, ErrInvalidInput) rather than a
// silent 0 — see Open Question #2: this implements only the corrected
// traversal, not the Boost-backend variant with the iterator typo.
func DiscreteHausdorff[T kernel.Number](a, b []kernel.Point[T]) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: discrete Hausdorff requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	return math.Max(oneSidedHausdorff(a, b), oneSidedHausdorff(b, a)), nil
}

// oneSidedHausdorff computes h(x,y) = max_{p in x} min_{q in y} ||p-q||,
// working in squared-distance space and taking one final sqrt since max/min
// commute with the monotone sqrt.
func oneSidedHausdorff[T kernel.Number](x, y []kernel.Point[T]) float64 {
	var maxMin T
	first := true
	for _, p := range x {
		minD := geomutil.SqDistPointPoint(p, y[0])
		for _, q := range y[1:] {
			d := geomutil.SqDistPointPoint(p, q)
			if d < minD {
				minD = d
			}
		}
		if first || minD > maxMin {
			maxMin = minD
			first = false
		}
	}
	return math.Sqrt(float64(maxMin))
}
