package simplify

import (
	"sort"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
)

// shortcutEdge is a validated shortcut (i,j), i<j, meaning every
// intermediate point lies within epsilon of segment (p_i,p_j) in the sense
// of the Chan-Chin wedge test.
type shortcutEdge struct {
	i, j int
}

// chanChinSweep runs the running-wedge-intersection sweep of spec §4.10
// over points in the given order, emitting a shortcut (i,i+1) for every
// adjacent pair and (i,k) whenever the intersection of the wedges at i
// tangent to the disks around i+1..k contains p_k. A disk that already
// contains p_i places no constraint on the wedge. Wedge comparisons use
// kernel.DefaultEpsilon as their numeric tolerance.
func chanChinSweep[T kernel.Number](points []kernel.Point[T], epsilon T) []shortcutEdge {
	n := len(points)
	tol := T(kernel.DefaultEpsilon)
	sqEps := epsilon * epsilon
	var edges []shortcutEdge
	for i := 0; i+1 < n; i++ {
		wi := geomutil.NewWedge(points[i], points[i+1], epsilon, tol)
		open := geomutil.SqDistPointPoint(points[i], points[i+1]) <= sqEps
		edges = append(edges, shortcutEdge{i, i + 1})
		if i == n-2 {
			break
		}
		for j := i + 2; j < n; j++ {
			if geomutil.SqDistPointPoint(points[i], points[j]) > sqEps {
				wj := geomutil.NewWedge(points[i], points[j], epsilon, tol)
				if open {
					wi, open = wj, false
				} else {
					wi = geomutil.Intersect(wi, wj, tol)
				}
				if wi.IsEmpty() {
					break
				}
			}
			if open || wi.Contains(points[j], tol) {
				edges = append(edges, shortcutEdge{i, j})
			}
		}
	}
	return edges
}

// chanChinEdges computes the valid shortcut set by intersecting the
// forward sweep with the reverse sweep (spec §4.10), so a shortcut is only
// accepted when both directions agree every intermediate point is covered.
func chanChinEdges[T kernel.Number](points []kernel.Point[T], epsilon T) []shortcutEdge {
	n := len(points)
	forward := chanChinSweep(points, epsilon)

	reversed := make([]kernel.Point[T], n)
	for i, p := range points {
		reversed[n-1-i] = p
	}
	backward := chanChinSweep(reversed, epsilon)
	for k, e := range backward {
		backward[k] = shortcutEdge{i: n - 1 - e.j, j: n - 1 - e.i}
	}

	sortEdges := func(edges []shortcutEdge) {
		sort.Slice(edges, func(a, b int) bool {
			if edges[a].i != edges[b].i {
				return edges[a].i < edges[b].i
			}
			return edges[a].j < edges[b].j
		})
	}
	sortEdges(forward)
	sortEdges(backward)

	backwardSet := make(map[shortcutEdge]bool, len(backward))
	for _, e := range backward {
		backwardSet[e] = true
	}

	var result []shortcutEdge
	for _, e := range forward {
		if backwardSet[e] {
			result = append(result, e)
		}
	}
	return result
}
