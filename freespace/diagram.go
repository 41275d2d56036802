package freespace

import (
	"fmt"

	"github.com/movetk-go/movetk/kernel"
)

// Diagram is the (n-1)x(m-1) grid of freespace cells for two polylines of
// length n and m (spec §3/§4.4). Cells are stored row-major: Cells[i][j] is
// the cell for segment i of A and segment j of B.
type Diagram[T kernel.Number] struct {
	A, B    []kernel.Point[T]
	Epsilon T
	Cells   [][]Cell[T]
}

// NewDiagram builds the freespace diagram for polylines a and b at radius
// epsilon. Requires len(a) >= 2 and len(b) >= 2 (at least one segment each).
func NewDiagram[T kernel.Number](a, b []kernel.Point[T], epsilon T) (Diagram[T], error) {
	if len(a) < 2 || len(b) < 2 {
		return Diagram[T]{}, fmt.Errorf("freespace: both polylines need at least 2 points, got %d and %d", len(a), len(b))
	}
	rows := len(a) - 1
	cols := len(b) - 1
	cells := make([][]Cell[T], rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]Cell[T], cols)
		segP := kernel.NewSegment(a[i], a[i+1])
		for j := 0; j < cols; j++ {
			segQ := kernel.NewSegment(b[j], b[j+1])
			cells[i][j] = NewCell(segP, segQ, epsilon)
		}
	}
	return Diagram[T]{A: a, B: b, Epsilon: epsilon, Cells: cells}, nil
}

// Rows returns the number of cell rows (len(A)-1).
func (d Diagram[T]) Rows() int { return len(d.Cells) }

// Cols returns the number of cell columns (len(B)-1), or 0 if there are no
// rows.
func (d Diagram[T]) Cols() int {
	if len(d.Cells) == 0 {
		return 0
	}
	return len(d.Cells[0])
}

// VertexFree reports whether the diagram vertex (i,j) — i.e. whether
// A[i] and B[j] are within Epsilon of each other — is free. This is the
// direct distance test used by clustering's grid graph,
// independent of which cell's boundary happens to record it.
func (d Diagram[T]) VertexFree(i, j int) bool {
	v := d.A[i].Sub(d.B[j])
	sq := v.SqNorm()
	return sq <= d.Epsilon*d.Epsilon
}
