package simplify

import (
	"fmt"

	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// ImaiIri simplifies points using the shortcut graph of spec §4.10: a
// directed edge (i,j) exists for every Chan-Chin-valid shortcut, then BFS
// from vertex 0 finds a shortest-hop path to vertex n-1, whose predecessor
// chain (reversed) is the simplification.
func ImaiIri[T kernel.Number](points []kernel.Point[T], epsilon T) ([]kernel.Point[T], error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: Imai-Iri requires a non-empty polyline", trajectory.ErrInvalidInput)
	}
	if n == 1 {
		return []kernel.Point[T]{points[0]}, nil
	}

	edges := chanChinEdges(points, epsilon)
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.i] = append(adj[e.i], e.j)
	}

	const unvisited = -1
	pred := make([]int, n)
	for i := range pred {
		pred[i] = unvisited
	}
	pred[0] = 0
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == n-1 {
			break
		}
		for _, v := range adj[u] {
			if pred[v] == unvisited {
				pred[v] = u
				queue = append(queue, v)
			}
		}
	}
	if pred[n-1] == unvisited {
		return nil, fmt.Errorf("%w: Imai-Iri shortcut graph has no path to the final point", trajectory.ErrNotFound)
	}

	var idx []int
	for v := n - 1; ; v = pred[v] {
		idx = append(idx, v)
		if v == pred[v] {
			break
		}
	}
	for l, r := 0, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}

	out := make([]kernel.Point[T], len(idx))
	for i, v := range idx {
		out[i] = points[v]
	}
	return out, nil
}
