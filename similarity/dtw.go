package similarity

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// DTWOption configures DTW.
type DTWOption func(*dtwConfig)

type dtwConfig struct {
	band    int
	hasBand bool
}

// WithSakoeChibaBand restricts the DP to cells with |i-j| <= max(w, |n-m|),
// per spec §4.5.
func WithSakoeChibaBand(w int) DTWOption {
	return func(c *dtwConfig) {
		c.band = w
		c.hasBand = true
	}
}

// DTW computes the dynamic time warping distance between polylines a and b
// (spec §4.5): D(i,j) = ||a_i-b_j|| + min(D(i-1,j), D(i,j-1), D(i-1,j-1)),
// with D(0,0)=||a_0-b_0|| and all unreachable cells at +Inf. Unlike
// Hausdorff/discrete-Fréchet, DTW sums real (non-squared) distances, so no
// sqrt-deferral is possible.
func DTW[T kernel.Number](a, b []kernel.Point[T], opts ...DTWOption) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: DTW requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	cfg := dtwConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	n, m := len(a), len(b)
	band := cfg.band
	if cfg.hasBand {
		absDiff := n - m
		if absDiff < 0 {
			absDiff = -absDiff
		}
		if absDiff > band {
			band = absDiff
		}
	}

	const inf = math.MaxFloat64
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, m)
		for j := range d[i] {
			d[i][j] = inf
		}
	}

	inBand := func(i, j int) bool {
		if !cfg.hasBand {
			return true
		}
		diff := i - j
		if diff < 0 {
			diff = -diff
		}
		return diff <= band
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !inBand(i, j) {
				continue
			}
			cost := math.Sqrt(float64(geomutil.SqDistPointPoint(a[i], b[j])))
			if i == 0 && j == 0 {
				d[i][j] = cost
				continue
			}
			best := inf
			if i > 0 && inBand(i-1, j) {
				best = math.Min(best, d[i-1][j])
			}
			if j > 0 && inBand(i, j-1) {
				best = math.Min(best, d[i][j-1])
			}
			if i > 0 && j > 0 && inBand(i-1, j-1) {
				best = math.Min(best, d[i-1][j-1])
			}
			if best == inf {
				continue
			}
			d[i][j] = cost + best
		}
	}
	return d[n-1][m-1], nil
}
