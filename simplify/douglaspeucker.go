// Package simplify implements the three polyline simplification algorithms
// of spec §4.9-§4.11: Douglas-Peucker (C10), Imai-Iri shortcut-graph
// simplification via the Chan-Chin wedge sweep (C11), and Agarwal's
// exponential-search simplification under a strong Fréchet bound (C12).
package simplify

import (
	"fmt"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// DouglasPeucker simplifies points to within perpendicular distance epsilon
// of the original polyline (spec §4.9), returning the kept points in
// along-trajectory order. The recursion always keeps both endpoints of the input range.
func DouglasPeucker[T kernel.Number](points []kernel.Point[T], epsilon T) ([]kernel.Point[T], error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: Douglas-Peucker requires a non-empty polyline", trajectory.ErrInvalidInput)
	}
	if n == 1 {
		return []kernel.Point[T]{points[0]}, nil
	}

	sqEps := epsilon * epsilon
	var kept []int
	douglasPeuckerRange(points, 0, n-1, sqEps, 0, &kept)
	kept = append(kept, n-1)

	out := make([]kernel.Point[T], len(kept))
	for i, idx := range kept {
		out[i] = points[idx]
	}
	return out, nil
}

// douglasPeuckerRange recurses on the inclusive index range [first, beyond]; it
// appends first (and, at the top-level call only, the final point — added
// by the caller) to kept.
func douglasPeuckerRange[T kernel.Number](points []kernel.Point[T], first, beyond int, sqEps T, depth int, kept *[]int) {
	depth++
	chord := kernel.NewSegment(points[first], points[beyond])

	farthest := first + 1
	var farthestDist T
	for i := first + 1; i < beyond; i++ {
		d := geomutil.SqDistPointSegment(points[i], chord)
		if i == first+1 || d > farthestDist {
			farthestDist = d
			farthest = i
		}
	}

	if farthestDist > sqEps {
		douglasPeuckerRange(points, first, farthest, sqEps, depth, kept)
		douglasPeuckerRange(points, farthest, beyond, sqEps, depth, kept)
	} else {
		*kept = append(*kept, first)
	}
}
