// Package clustering implements freespace-diagram-based subtrajectory
// clustering (C16, spec §4.15): build a self free-space diagram, connect
// mutually free corners, and sweep column ranges counting monotone paths
// to find the longest well-supported subtrajectory cluster.
package clustering

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/freespace"
	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
)

// Cluster reports one candidate subtrajectory cluster: the index range
// [Start, End] along the polyline, its Euclidean arc length, and the
// number of mutually consistent monotone paths (Size) supporting it.
type Cluster struct {
	Start, End int
	Length     float64
	Size       int
}

// SubtrajectoryClusters builds the self free-space diagram of points at
// radius epsilon, then sweeps every column range [start,end] from longest
// to shortest, reporting the first (hence longest) range whose monotone
// free-corner path count reaches minSize (spec §4.15).
func SubtrajectoryClusters[T kernel.Number](points []kernel.Point[T], epsilon T, minSize int) (Cluster, error) {
	n := len(points)
	if n < 2 {
		return Cluster{}, fmt.Errorf("clustering requires at least 2 points, got %d", n)
	}
	if minSize < 1 {
		return Cluster{}, fmt.Errorf("clustering requires minSize >= 1, got %d", minSize)
	}

	diagram, err := freespace.NewDiagram(points, points, epsilon)
	if err != nil {
		return Cluster{}, err
	}

	free := make([][]bool, n)
	for i := 0; i < n; i++ {
		free[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			free[i][j] = diagram.VertexFree(i, j)
		}
	}
	// edge(i,j,i',j') holds when both corners are free and share a cell,
	// i.e. are within Chebyshev distance 1 of each other: this is exactly
	// "all pairs of free corners in a cell, including the diagonal".
	edge := func(i, j, i2, j2 int) bool {
		if i == i2 && j == j2 {
			return false
		}
		di, dj := i2-i, j2-j
		if di < 0 {
			di = -di
		}
		if dj < 0 {
			dj = -dj
		}
		return di <= 1 && dj <= 1 && free[i][j] && free[i2][j2]
	}

	for length := n - 1; length >= 1; length-- {
		for start := 0; start+length < n; start++ {
			end := start + length
			if size := countMonotonePaths(n, start, end, free, edge); size >= minSize {
				return Cluster{Start: start, End: end, Length: arcLength(points[start : end+1]), Size: size}, nil
			}
		}
	}
	return Cluster{}, fmt.Errorf("no subtrajectory cluster reaches size %d", minSize)
}

// countMonotonePaths counts monotone decreasing paths (in both row and
// column, at least one strictly decreasing per step) along edges of the
// free-corner graph from any free vertex in column end down to any row at
// column start, via a DP swept in decreasing (row, column) order. A path
// ends at the first column-end vertex it reaches.
func countMonotonePaths(n, start, end int, free [][]bool, edge func(i, j, i2, j2 int) bool) int {
	width := end - start + 1
	count := make([][]int, n)
	for i := range count {
		count[i] = make([]int, width)
	}
	for i := 0; i < n; i++ {
		if free[i][end] {
			count[i][width-1] = 1
		}
	}

	for i := n - 1; i >= 0; i-- {
		for jj := width - 2; jj >= 0; jj-- {
			j := start + jj
			total := 0
			for di := 0; di <= 1; di++ {
				for dj := 0; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					i2, j2 := i+di, j+dj
					if i2 >= n || j2 > end {
						continue
					}
					if edge(i, j, i2, j2) {
						total += count[i2][j2-start]
					}
				}
			}
			count[i][jj] = total
		}
	}

	total := 0
	for i := 0; i < n; i++ {
		total += count[i][0]
	}
	return total
}

func arcLength[T kernel.Number](points []kernel.Point[T]) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += math.Sqrt(float64(geomutil.SqDistPointPoint(points[i-1], points[i])))
	}
	return total
}
