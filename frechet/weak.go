// Package frechet implements weak Fréchet distance via a min-max shortest
// path on the freespace grid graph (C7, spec §4.6), and strong Fréchet
// decision plus parametric search (C8, spec §4.7).
package frechet

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	godsutils "github.com/emirpasic/gods/utils"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// WeakMatchStep is one step of the back-propagated weak-Fréchet matching
// (spec §4.6): the grid vertex (I,J) and the weight that led to it. The
// first element is always the sentinel ((-1,-1), ||a0-b0||).
type WeakMatchStep struct {
	I, J   int
	Weight float64
}

// WeakFrechet computes the weak Fréchet distance between polylines a
// (length n) and b (length m), and optionally the matching path (spec
// §4.6). If withMatching is false, Matching is nil and only Distance is
// computed.
func WeakFrechet[T kernel.Number](a, b []kernel.Point[T], withMatching bool) (distance float64, matching []WeakMatchStep, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, fmt.Errorf("%w: weak Fréchet requires non-empty polylines", trajectory.ErrInvalidInput)
	}
	end0 := math.Sqrt(float64(geomutil.SqDistPointPoint(a[0], b[0])))
	endN := math.Sqrt(float64(geomutil.SqDistPointPoint(a[n-1], b[m-1])))

	if n == 1 || m == 1 {
		// Degenerate grid: fall back to point-to-polyline closed form.
		d := degenerateWeak(a, b)
		return math.Max(math.Max(end0, endN), d), nil, nil
	}

	rows, cols := n-1, m-1 // (n-1)x(m-1) grid of cell vertices, per spec §4.6
	type vertex struct{ i, j int }
	id := func(i, j int) int { return i*cols + j }

	// Horizontal edges (i,j)-(i+1,j), i in [0,rows-2]: weight =
	// dist(b_j, segment(a_i,a_{i+1})).
	// Vertical edges (i,j)-(i,j+1), j in [0,cols-2]: weight =
	// dist(a_i, segment(b_j,b_{j+1})).
	// This yields (rows-1)*cols horizontal edges and rows*(cols-1)
	// vertical edges — one short of a full (rows-1) count on verticals
	// would occur only if cols itself were used as the vertical bound
	// instead of cols-1; here the bound is explicit and correct (resolved
	// Open Question, see DESIGN.md).

	weightH := func(i, j int) float64 {
		seg := kernel.NewSegment(a[i], a[i+1])
		return math.Sqrt(float64(geomutil.SqDistPointSegment(b[j], seg)))
	}
	weightV := func(i, j int) float64 {
		seg := kernel.NewSegment(b[j], b[j+1])
		return math.Sqrt(float64(geomutil.SqDistPointSegment(a[i], seg)))
	}

	const inf = math.MaxFloat64
	numVerts := rows * cols
	dist := make([]float64, numVerts)
	prev := make([]int, numVerts)
	visited := make([]bool, numVerts)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	start := id(0, 0)
	dist[start] = 0

	type item struct {
		v        int
		priority float64
	}
	pq := binaryheap.NewWith(func(x, y interface{}) int {
		return godsutils.Float64Comparator(x.(item).priority, y.(item).priority)
	})
	pq.Push(item{v: start, priority: 0})

	relax := func(u, vID int, w float64) {
		candidate := math.Max(dist[u], w)
		if candidate < dist[vID] {
			dist[vID] = candidate
			prev[vID] = u
			pq.Push(item{v: vID, priority: candidate})
		}
	}

	for !pq.Empty() {
		top, _ := pq.Pop()
		cur := top.(item)
		u := cur.v
		if visited[u] {
			continue
		}
		visited[u] = true
		ui, uj := u/cols, u%cols

		if ui+1 < rows {
			relax(u, id(ui+1, uj), weightH(ui, uj))
		}
		if ui-1 >= 0 {
			relax(u, id(ui-1, uj), weightH(ui-1, uj))
		}
		if uj+1 < cols {
			relax(u, id(ui, uj+1), weightV(ui, uj))
		}
		if uj-1 >= 0 {
			relax(u, id(ui, uj-1), weightV(ui, uj-1))
		}
	}

	goal := id(rows-1, cols-1)
	result := dist[goal]
	distance = math.Sqrt(math.Max(math.Max(end0*end0, endN*endN), result*result))

	if !withMatching {
		return distance, nil, nil
	}

	var path []vertex
	for v := goal; v != -1; v = prev[v] {
		path = append([]vertex{{v / cols, v % cols}}, path...)
	}
	matching = append(matching, WeakMatchStep{I: -1, J: -1, Weight: end0})
	for _, v := range path {
		matching = append(matching, WeakMatchStep{I: v.i, J: v.j, Weight: dist[id(v.i, v.j)]})
	}
	return distance, matching, nil
}

// degenerateWeak handles the case where one polyline has a single point:
// the weak Fréchet distance collapses to the maximum distance from that
// point to the other polyline's segments.
func degenerateWeak[T kernel.Number](a, b []kernel.Point[T]) float64 {
	if len(a) == 1 {
		return maxPointToPolyline(a[0], b)
	}
	return maxPointToPolyline(b[0], a)
}

func maxPointToPolyline[T kernel.Number](p kernel.Point[T], poly []kernel.Point[T]) float64 {
	if len(poly) == 1 {
		return math.Sqrt(float64(geomutil.SqDistPointPoint(p, poly[0])))
	}
	var maxD T
	first := true
	for i := 0; i+1 < len(poly); i++ {
		seg := kernel.NewSegment(poly[i], poly[i+1])
		d := geomutil.SqDistPointSegment(p, seg)
		if first || d > maxD {
			maxD = d
			first = false
		}
	}
	return math.Sqrt(float64(maxD))
}
