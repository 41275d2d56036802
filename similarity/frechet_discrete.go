package similarity

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// DiscreteFrechet computes the discrete Fréchet distance between polylines
// a (length n) and b (length m) via the Eiter-Mannila DP of spec §4.5,
// using rolling O(m) storage. The DP runs in squared-distance space (max
// and min commute with sqrt) and takes a single final sqrt.
func DiscreteFrechet[T kernel.Number](a, b []kernel.Point[T]) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: discrete Fréchet requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	n, m := len(a), len(b)

	prev := make([]T, m)
	curr := make([]T, m)

	prev[0] = geomutil.SqDistPointPoint(a[0], b[0])
	for j := 1; j < m; j++ {
		prev[j] = maxT(prev[j-1], geomutil.SqDistPointPoint(a[0], b[j]))
	}

	for i := 1; i < n; i++ {
		curr[0] = maxT(prev[0], geomutil.SqDistPointPoint(a[i], b[0]))
		for j := 1; j < m; j++ {
			best := minT(prev[j], prev[j-1])
			best = minT(best, curr[j-1])
			curr[j] = maxT(best, geomutil.SqDistPointPoint(a[i], b[j]))
		}
		prev, curr = curr, prev
	}

	return math.Sqrt(float64(prev[m-1])), nil
}

// DiscreteFrechetMatrix computes the discrete Fréchet distance between
// every pair of trajectories in trajs, returned as an upper-triangular
// matrix: row i holds distances to rows i+1,...,n-1 (spec §5), the
// remaining entries left at zero.
func DiscreteFrechetMatrix[T kernel.Number](trajs [][]kernel.Point[T]) ([][]float64, error) {
	n := len(trajs)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := DiscreteFrechet(trajs[i], trajs[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = d
		}
	}
	return out, nil
}

func maxT[T kernel.Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T kernel.Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}
