// Package geomutil implements the point-object distance functionals (C2),
// the Chan-Chin wedge primitive (C3), and the two-disk minimum bounding
// rectangle (C4) spec §4.1-§4.3 build the rest of the core on top of.
package geomutil

import "github.com/movetk-go/movetk/kernel"

// SqDistPointPoint returns the squared Euclidean distance between two
// points: the inner product of (P-P') with itself (spec §4.1).
func SqDistPointPoint[T kernel.Number](p, q kernel.Point[T]) T {
	v := p.Sub(q)
	return v.SqNorm()
}

// SqDistPointSegment returns the squared distance from p to the closest
// point on segment s, using the perpendicular-foot rule of spec §4.1:
//
//	u = p - s[0], v = s[1] - s[0]
//	u.v <= 0            => |u|^2               (closest point is s[0])
//	u.v >= |v|^2         => |p - s[1]|^2         (closest point is s[1])
//	otherwise            => |u|^2 - (u.v)^2/|v|^2 (perpendicular foot)
func SqDistPointSegment[T kernel.Number](p kernel.Point[T], s kernel.Segment[T]) T {
	u := p.Sub(s.A())
	v := s.Direction()
	uv := u.Dot(v)
	if uv <= 0 {
		return u.SqNorm()
	}
	vv := v.SqNorm()
	if uv >= vv {
		return SqDistPointPoint(p, s.B())
	}
	return u.SqNorm() - (uv*uv)/vv
}

// Line is an infinite line through two distinct points, used by
// SqDistPointLine. Unlike Segment, a Line has no endpoints to clamp to.
type Line[T kernel.Number] struct {
	Through kernel.Segment[T]
}

// NewLine constructs the infinite line through a and b.
func NewLine[T kernel.Number](a, b kernel.Point[T]) Line[T] {
	return Line[T]{Through: kernel.NewSegment(a, b)}
}

// SqDistPointLine returns the squared perpendicular distance from p to the
// infinite line through l's two defining points — the same rule as
// SqDistPointSegment, but without the endpoint clamps (spec §4.1).
func SqDistPointLine[T kernel.Number](p kernel.Point[T], l Line[T]) T {
	u := p.Sub(l.Through.A())
	v := l.Through.Direction()
	uv := u.Dot(v)
	vv := v.SqNorm()
	if vv == 0 {
		return u.SqNorm()
	}
	return u.SqNorm() - (uv*uv)/vv
}
