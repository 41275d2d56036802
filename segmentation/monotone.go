// Package segmentation implements monotone criterion-driven segmentation
// via Buchin-Driemel doubling search (C13, spec §4.12) and model-based
// segmentation via an information-criterion DP (C15, spec §4.14).
package segmentation

import "fmt"

// Criterion is a predicate over the half-open index range [first, last)
// that is monotone under prefix extension: if it holds for a range it also
// holds for every shorter prefix sharing the same first index (spec
// §4.12). The four criteria shipped with the core package (spatial,
// temporal, heading, speed) are all of this shape.
type Criterion func(first, last int) bool

// MonotoneBreakpoints partitions [0,n) using Buchin-Driemel doubling
// search: from the current cursor, double the extension while the
// criterion holds, then binary-search the boundary once it fails, emitting
// the last index of each segment (spec §4.12). The returned indices are in
// along-trajectory order and the final one is always n-1.
func MonotoneBreakpoints(n int, ok Criterion) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("monotone segmentation requires a non-empty range, got n=%d", n)
	}
	if n == 1 {
		return []int{0}, nil
	}

	var breakpoints []int
	it := 0
	for it < n-1 {
		remainder := n - it
		a := monotoneExtent(it, remainder, ok)
		if a == 1 {
			a = 2 // guarantee forward progress even when ok never holds beyond one point
		}
		if a >= remainder {
			break // the rest of the trajectory fits in one segment
		}
		breakpoints = append(breakpoints, it+a-1)
		it += a - 1
	}
	breakpoints = append(breakpoints, n-1)
	return breakpoints, nil
}

// monotoneExtent finds the largest a in [1, remainder] such that
// ok(it, it+a) holds, via exponential doubling followed by bisection.
func monotoneExtent(it, remainder int, ok Criterion) int {
	if ok(it, it+remainder) {
		return remainder
	}
	lo, hi := 1, 2
	for hi < remainder && ok(it, it+hi) {
		lo = hi
		hi *= 2
	}
	if hi > remainder {
		hi = remainder
	}
	if ok(it, it+hi) {
		return hi
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if ok(it, it+mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
