package frechet

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// boundaryKind classifies where the perpendicular projection of the fixed
// vertex onto the moving segment's supporting line falls, relative to the
// segment (spec §4.7).
type boundaryKind int

const (
	boundaryOn boundaryKind = iota
	boundaryAbove
	boundaryBelow
)

// boundaryPolynomial is the convex scalar function f(u) = squared distance
// from the fixed vertex to the point at parameter u along the moving
// segment, restricted to the domain needed to compute range(ε) in
// unnormalized (arc-length) units.
type boundaryPolynomial struct {
	parallel, perp, minEpsilon float64
	kind                       boundaryKind
}

// computeBoundaryPolynomial builds the polynomial for fixed vertex point
// against the segment (s0,s1).
func computeBoundaryPolynomial[T kernel.Number](point, s0, s1 kernel.Point[T]) boundaryPolynomial {
	dir := s1.Sub(s0)
	segLen := math.Sqrt(float64(dir.SqNorm()))
	toPoint := point.Sub(s0)
	pntLen := math.Sqrt(float64(toPoint.SqNorm()))

	var parallel float64
	if segLen > 0 {
		parallel = float64(toPoint.Dot(dir)) / segLen
	}
	perpSq := pntLen*pntLen - parallel*parallel
	if perpSq < 0 {
		perpSq = 0 // guards against floating-point cancellation
	}
	perp := math.Sqrt(perpSq)

	seg := kernel.NewSegment(s0, s1)
	minEps := math.Sqrt(float64(geomutil.SqDistPointSegment(point, seg)))

	kind := boundaryOn
	switch {
	case parallel > segLen:
		kind = boundaryAbove
	case parallel < 0:
		kind = boundaryBelow
	}
	return boundaryPolynomial{parallel: parallel, perp: perp, minEpsilon: minEps, kind: kind}
}

// rangeFor returns the (possibly empty) unnormalized interval of the moving
// segment's parameter within distance epsilon of the fixed vertex. An empty
// interval is signalled by lo > hi.
func (p boundaryPolynomial) rangeFor(epsilon float64) interval {
	if epsilon < p.minEpsilon {
		return interval{lo: math.Inf(1), hi: math.Inf(-1)}
	}
	reach := math.Sqrt(math.Max(0, epsilon*epsilon-p.perp*p.perp))
	lo := p.parallel - reach
	if p.kind == boundaryBelow {
		lo = 0
	}
	hi := p.parallel + reach
	if p.kind == boundaryAbove {
		hi = p.parallel
	}
	return interval{lo: lo, hi: hi}
}

// cellPolynomials holds the Left and Bottom boundary polynomials of one
// freespace cell (spec §4.4, §4.7); Top/Right are shared with neighbouring
// cells and so are never stored separately.
type cellPolynomials struct {
	left, bottom boundaryPolynomial
}

// buildCellPolynomials precomputes the (n-1)x(m-1) table of cell boundary
// polynomials for polylines a and b.
func buildCellPolynomials[T kernel.Number](a, b []kernel.Point[T]) [][]cellPolynomials {
	n, m := len(a), len(b)
	out := make([][]cellPolynomials, n-1)
	for i := range out {
		out[i] = make([]cellPolynomials, m-1)
		for j := range out[i] {
			out[i][j] = cellPolynomials{
				bottom: computeBoundaryPolynomial(a[i], b[j], b[j+1]),
				left:   computeBoundaryPolynomial(b[j], a[i], a[i+1]),
			}
		}
	}
	return out
}

// interval is a closed range of a cell-boundary parameter; empty whenever
// hi < lo.
type interval struct {
	lo, hi float64
}

func (iv interval) empty() bool { return iv.hi < iv.lo }

// clampLoToMax raises iv's lower bound to the predecessor's, per the
// monotone combine rule of spec §4.7. A no-op on an already-empty interval.
func (iv *interval) clampLoToMax(pred interval) {
	if iv.empty() {
		return
	}
	iv.lo = math.Max(iv.lo, pred.lo)
}

var fullyOpen = interval{lo: math.Inf(-1), hi: math.Inf(1)}

// cellReach holds, for one cell, the reachable sub-intervals of its two
// entry edges: index 0 is the "bottom-direction" interval (shared across
// row-advancing propagation), index 1 the "left-direction" interval.
type cellReach struct {
	iv [2]interval
}

func (c cellReach) reachable() bool { return !c.iv[0].empty() || !c.iv[1].empty() }

// decideStrongFrechet runs the Alt-Godau decision procedure (spec §4.7)
// over the precomputed cell polynomials: true iff a monotone path from the
// bottom-left to the top-right corner stays within distance epsilon
// throughout. It stores only one row/column of intermediate state at a
// time, iterating over the larger dimension and keeping the smaller one in
// memory.
func decideStrongFrechet(polys [][]cellPolynomials, epsilon float64) bool {
	maxI := len(polys)
	maxJ := len(polys[0])
	sizes := [2]int{maxI, maxJ}

	dim := 0
	if maxI > maxJ {
		dim = 1
	}
	secondaryDim := 1 - dim

	getFreeSpace := func(primaryIdx, secondaryIdx, targetDim int) interval {
		var r, c int
		if dim == 0 {
			r, c = primaryIdx, secondaryIdx
		} else {
			r, c = secondaryIdx, primaryIdx
		}
		if targetDim == 0 {
			return polys[r][c].bottom.rangeFor(epsilon)
		}
		return polys[r][c].left.rangeFor(epsilon)
	}

	var progress [2][]cellReach
	current := 0
	progress[current] = make([]cellReach, sizes[dim])
	progress[current][0].iv[secondaryDim] = fullyOpen
	progress[current][0].iv[dim] = fullyOpen
	for i := 1; i < sizes[dim]; i++ {
		if !progress[current][i-1].iv[dim].empty() {
			progress[current][i].iv[dim] = getFreeSpace(i, 0, dim)
			progress[current][i].iv[dim].clampLoToMax(progress[current][i-1].iv[dim])
		}
	}

	for j := 1; j < sizes[secondaryDim]; j++ {
		prev := current
		current = 1 - current
		progress[current] = make([]cellReach, sizes[dim])

		prevFirst := progress[prev][0]
		if !prevFirst.iv[secondaryDim].empty() {
			progress[current][0].iv[secondaryDim] = getFreeSpace(0, j, secondaryDim)
			progress[current][0].iv[secondaryDim].clampLoToMax(prevFirst.iv[secondaryDim])
		}
		hasReachable := progress[current][0].reachable()

		for i := 1; i < sizes[dim]; i++ {
			if progress[prev][i].reachable() {
				progress[current][i].iv[secondaryDim] = getFreeSpace(i, j, secondaryDim)
				if progress[prev][i].iv[dim].empty() && !progress[prev][i].iv[secondaryDim].empty() {
					progress[current][i].iv[secondaryDim].clampLoToMax(progress[prev][i].iv[secondaryDim])
				}
			}
			if progress[current][i-1].reachable() {
				progress[current][i].iv[dim] = getFreeSpace(i, j, dim)
				if progress[current][i-1].iv[secondaryDim].empty() && !progress[current][i-1].iv[dim].empty() {
					progress[current][i].iv[dim].clampLoToMax(progress[current][i-1].iv[dim])
				}
			}
			hasReachable = hasReachable || progress[current][i].reachable()
		}
		if !hasReachable {
			return false
		}
	}

	last := progress[current]
	return last[len(last)-1].reachable()
}

// StrongFrechetDecision reports whether the strong Fréchet distance between
// a and b is at most epsilon (spec §4.7). A single-point polyline, or two
// polylines of exactly 2 points each, are resolved in closed form; every
// other pair, including a 2-point polyline against a longer one, goes
// through the freespace diagram.
func StrongFrechetDecision[T kernel.Number](a, b []kernel.Point[T], epsilon float64) (bool, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return false, fmt.Errorf("%w: strong Fréchet requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	if n == 1 {
		return maxPointToPolyline(a[0], b) <= epsilon, nil
	}
	if m == 1 {
		return maxPointToPolyline(b[0], a) <= epsilon, nil
	}
	minEps := math.Max(
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[0], b[0]))),
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[n-1], b[m-1]))),
	)
	if n == 2 && m == 2 {
		return minEps <= epsilon, nil
	}
	if minEps > epsilon {
		return false, nil
	}
	return decideStrongFrechet(buildCellPolynomials(a, b), epsilon), nil
}

// closedFormStrongFrechet handles the closed-form cases (a single-point
// polyline, or both polylines with exactly 2 points), returning
// (distance, true) when one applies and (0, false) otherwise.
func closedFormStrongFrechet[T kernel.Number](a, b []kernel.Point[T]) (float64, bool) {
	n, m := len(a), len(b)
	if n == 1 {
		return maxPointToPolyline(a[0], b), true
	}
	if m == 1 {
		return maxPointToPolyline(b[0], a), true
	}
	if n == 2 && m == 2 {
		d := math.Max(
			math.Sqrt(float64(geomutil.SqDistPointPoint(a[0], b[0]))),
			math.Sqrt(float64(geomutil.SqDistPointPoint(a[1], b[1]))),
		)
		return d, true
	}
	return 0, false
}

// StrongFrechetBisection computes the strong Fréchet distance between a and
// b to within tolerance, given a caller-supplied upper bound U (spec
// §4.7). Returns ErrNotFound if Decision(U) fails.
func StrongFrechetBisection[T kernel.Number](a, b []kernel.Point[T], tolerance, upper float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: strong Fréchet requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	if d, ok := closedFormStrongFrechet(a, b); ok {
		return d, nil
	}

	lower := math.Max(
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[0], b[0]))),
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[len(a)-1], b[len(b)-1]))),
	)
	polys := buildCellPolynomials(a, b)
	if !decideStrongFrechet(polys, upper) {
		return 0, fmt.Errorf("%w: strong Fréchet distance exceeds upper bound %v", trajectory.ErrNotFound, upper)
	}
	return bisectStrongFrechet(polys, tolerance, lower, upper), nil
}

// StrongFrechetDoubleAndSearch computes the strong Fréchet distance between
// a and b to within tolerance by repeatedly doubling a trial epsilon until
// Decision holds, then bisecting the last interval (spec §4.7).
func StrongFrechetDoubleAndSearch[T kernel.Number](a, b []kernel.Point[T], tolerance float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: strong Fréchet requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	if d, ok := closedFormStrongFrechet(a, b); ok {
		return d, nil
	}

	lower := math.Max(
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[0], b[0]))),
		math.Sqrt(float64(geomutil.SqDistPointPoint(a[len(a)-1], b[len(b)-1]))),
	)
	polys := buildCellPolynomials(a, b)
	start := math.Max(lower, tolerance)
	curr := start * 2
	for {
		if decideStrongFrechet(polys, curr) {
			return bisectStrongFrechet(polys, tolerance, curr/2, curr), nil
		}
		curr *= 2
	}
}

// bisectStrongFrechet assumes Decision(upper) holds and narrows [lower,
// upper] until its width is at most tolerance, returning the smallest
// epsilon found to satisfy Decision.
func bisectStrongFrechet(polys [][]cellPolynomials, tolerance, lower, upper float64) float64 {
	best := upper
	for math.Abs(upper-lower) > tolerance {
		mid := (lower + upper) / 2
		if decideStrongFrechet(polys, mid) {
			upper = mid
			best = mid
		} else {
			lower = mid
		}
	}
	return best
}
