// Package freespace builds the per-cell boundary intersections and free
// corner labels (C5) that clustering builds on, following
// the four-sphere-intersection construction order of spec §4.4, itself
// grounded on the original FreeSpaceCell constructor
// (movetk/ds/FreeSpaceDiagram.h): Left, Top, Right, Bottom, in that order.
package freespace

import (
	"github.com/movetk-go/movetk/kernel"
)

// Edge names the four boundary edges of a freespace cell.
type Edge int

const (
	Left Edge = iota
	Top
	Right
	Bottom
)

// Corner names the four corners of a freespace cell.
type Corner int

const (
	BottomLeft Corner = iota
	TopLeft
	TopRight
	BottomRight
)

// Intersection records one boundary crossing of the free region with a
// cell edge (spec §3: "up to 2 intersection parameters per edge").
type Intersection[T kernel.Number] struct {
	Edge             Edge
	SignDiscriminant int
	Ratio            T // squared-ratio r = t*t along the edge, t clamped to [0,1]
	Point            kernel.Point[T]
}

// Cell is the freespace cell for two segments P (cell's own segment along
// the first polyline) and Q (along the second), and an epsilon radius. The
// free region {(s,t): |P(s)-Q(t)| <= epsilon} is represented by up to two
// intersection parameters per edge plus a set of free corners (spec §3).
type Cell[T kernel.Number] struct {
	P, Q          kernel.Segment[T]
	Epsilon       T
	Intersections []Intersection[T]
	FreeCorners   map[Corner]bool
}

// NewCell constructs the freespace cell for segments p, q and radius
// epsilon, performing the four sphere-segment intersection tests in the
// fixed order spec §4.4 requires:
//
//	ball(Q[0],eps) ∩ P -> Left
//	ball(P[1],eps) ∩ Q -> Top
//	ball(Q[1],eps) ∩ P -> Right
//	ball(P[0],eps) ∩ Q -> Bottom
//
// Free corners are a direct point-distance test of the four (P,Q) endpoint
// pairs, the same test freespace.Diagram.VertexFree applies at the whole-
// polyline level: a corner's freeness doesn't depend on where an adjacent
// edge's boundary crossings happen to fall, so it is checked independently
// of Intersections rather than inferred from it.
func NewCell[T kernel.Number](p, q kernel.Segment[T], epsilon T) Cell[T] {
	c := Cell[T]{P: p, Q: q, Epsilon: epsilon, FreeCorners: make(map[Corner]bool)}

	left := intersectEdge(kernel.NewSphere(q.A(), epsilon*epsilon), p, Left)
	c.Intersections = append(c.Intersections, left...)

	top := intersectEdge(kernel.NewSphere(p.B(), epsilon*epsilon), q, Top)
	c.Intersections = append(c.Intersections, top...)

	right := intersectEdge(kernel.NewSphere(q.B(), epsilon*epsilon), p, Right)
	c.Intersections = append(c.Intersections, right...)

	bottom := intersectEdge(kernel.NewSphere(p.A(), epsilon*epsilon), q, Bottom)
	c.Intersections = append(c.Intersections, bottom...)

	sq := epsilon * epsilon
	if sqDist(p.A(), q.A()) <= sq {
		c.FreeCorners[BottomLeft] = true
	}
	if sqDist(p.B(), q.A()) <= sq {
		c.FreeCorners[TopLeft] = true
	}
	if sqDist(p.B(), q.B()) <= sq {
		c.FreeCorners[TopRight] = true
	}
	if sqDist(p.A(), q.B()) <= sq {
		c.FreeCorners[BottomRight] = true
	}

	kernel.LogDebugf("freespace: cell P=%v Q=%v eps=%v: %d intersections, free corners %v",
		p, q, epsilon, len(c.Intersections), c.FreeCorners)

	return c
}

// intersectEdge computes the intersections of sphere with segment s lying
// within s's own [0,1] range, emitting zero, one or two Intersection
// records tagged with edge. A SignDiscriminant of -1 means the segment
// never crosses the sphere's boundary (entirely inside or entirely
// outside it, per SegmentIntersection.Inside) and contributes no record:
// corner freeness is established independently, by NewCell's direct
// point-distance test, so no placeholder record is needed here.
func intersectEdge[T kernel.Number](sphere kernel.Sphere[T], s kernel.Segment[T], edge Edge) []Intersection[T] {
	si := sphere.IntersectSegment(s)
	switch si.SignDiscriminant {
	case -1:
		return nil
	case 0:
		r := clamp01(si.T0)
		return []Intersection[T]{{Edge: edge, SignDiscriminant: 0, Ratio: r * r, Point: s.At(si.T0)}}
	default:
		r0, r1 := clamp01(si.T0), clamp01(si.T1)
		return []Intersection[T]{
			{Edge: edge, SignDiscriminant: 1, Ratio: r0 * r0, Point: s.At(si.T0)},
			{Edge: edge, SignDiscriminant: 1, Ratio: r1 * r1, Point: s.At(si.T1)},
		}
	}
}

func clamp01[T kernel.Number](t T) T {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func sqDist[T kernel.Number](a, b kernel.Point[T]) T {
	v := a.Sub(b)
	return v.SqNorm()
}
