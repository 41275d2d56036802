package kernel

import "math"

// Sphere is a centre point and a squared radius (spec §3: "Never a negative
// r²"). In 2D this is a disk/circle; in 3D a ball. All sphere arithmetic in
// this package stays in squared quantities, taking a square root only at
// the boundary (spec §4.1).
type Sphere[T Number] struct {
	center   Point[T]
	sqRadius T
}

// NewSphere constructs a Sphere from a centre and squared radius. Panics if
// sqRadius is negative: a negative squared radius can never arise from valid
// geometry and signals a programmer error upstream.
func NewSphere[T Number](center Point[T], sqRadius T) Sphere[T] {
	if sqRadius < 0 {
		panic("kernel: sphere squared radius must not be negative")
	}
	return Sphere[T]{center: center, sqRadius: sqRadius}
}

// Center returns the sphere's centre point.
func (s Sphere[T]) Center() Point[T] { return s.center }

// SqRadius returns the sphere's squared radius.
func (s Sphere[T]) SqRadius() T { return s.sqRadius }

// Radius returns sqrt(SqRadius()) as a float64, taking the square root only
// here, at the presentation boundary (spec §4.1).
func (s Sphere[T]) Radius() float64 {
	return math.Sqrt(float64(s.sqRadius))
}

// SegmentIntersection describes where a line segment crosses the boundary
// of a sphere, parametrized along the segment.
//
// SignDiscriminant classifies the crossings that actually land on the
// segment's own parameter range [0,1], not the raw quadratic roots:
//
//	+1: two crossings within [0,1] (the segment enters and exits the sphere)
//	 0: exactly one crossing within [0,1] (tangent, or one endpoint inside
//	    and the other outside)
//	-1: no crossing within [0,1]. Inside then distinguishes whether that is
//	    because the whole segment lies inside the sphere (Inside true) or
//	    entirely outside it (Inside false).
type SegmentIntersection[T Number] struct {
	SignDiscriminant int
	T0, T1           T    // crossings, valid per SignDiscriminant (T1 unset if only one)
	HasT0, HasT1     bool
	Inside           bool // only meaningful when SignDiscriminant == -1
}

// IntersectSegment solves |S(t) - center|^2 = sqRadius for t, t in [0,1]
// along seg, and classifies the result against the segment's own range
// (see SegmentIntersection). Since a = d.d > 0 for any non-degenerate
// segment, f(t) = a*t^2 + b*t + c opens upward: a negative discriminant
// means f is positive everywhere, i.e. the whole line — and so the whole
// segment — lies strictly outside the sphere, never inside it.
func (s Sphere[T]) IntersectSegment(seg Segment[T]) SegmentIntersection[T] {
	d := seg.Direction()
	f := seg.A().Sub(s.center) // A - center

	a := d.Dot(d)
	b := 2 * f.Dot(d)
	c := f.Dot(f) - s.sqRadius

	if a == 0 {
		// Degenerate (zero-length) segment: treat as containment test.
		return SegmentIntersection[T]{SignDiscriminant: -1, Inside: c <= 0}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return SegmentIntersection[T]{SignDiscriminant: -1}
	}

	sq := T(math.Sqrt(float64(disc)))
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a) // t0 <= t1; f(t) <= 0 exactly on [t0,t1]

	switch {
	case t0 <= 0 && t1 >= 1:
		// [0,1] sits entirely inside the root interval: the whole segment
		// is inside the sphere, with no boundary crossing on the segment.
		return SegmentIntersection[T]{SignDiscriminant: -1, Inside: true}
	case t1 < 0 || t0 > 1:
		// The root interval doesn't overlap [0,1] at all: the segment
		// never enters the sphere.
		return SegmentIntersection[T]{SignDiscriminant: -1}
	case t0 == t1:
		return SegmentIntersection[T]{SignDiscriminant: 0, T0: t0, HasT0: true}
	case t0 < 0 || t0 > 1:
		// Only t1 lands on the segment.
		return SegmentIntersection[T]{SignDiscriminant: 0, T0: t1, HasT0: true}
	case t1 < 0 || t1 > 1:
		// Only t0 lands on the segment.
		return SegmentIntersection[T]{SignDiscriminant: 0, T0: t0, HasT0: true}
	default:
		return SegmentIntersection[T]{SignDiscriminant: 1, T0: t0, HasT0: true, T1: t1, HasT1: true}
	}
}

// IntersectsSphere reports whether s and other's boundaries or interiors
// touch or overlap (sphere ∩ sphere predicate, spec §1).
func (s Sphere[T]) IntersectsSphere(other Sphere[T]) bool {
	d := s.center.Sub(other.center)
	sqDist := d.SqNorm()
	sumR := s.Radius() + other.Radius()
	return float64(sqDist) <= sumR*sumR
}

// IntersectSphereLens computes the half-chord length H of the lens formed
// by the intersection of s and other (used by geomutil.MBR, spec §4.3). ok
// is false when the centres coincide, the spheres are disjoint, or one lies
// inside the other; tangent spheres give H == 0 with ok true.
//
// The derivation: place d = |C2-C1|. The radical line sits at distance
// a = (d^2 + r1^2 - r2^2) / (2d) from C1 along the centre line; the
// half-chord is H = sqrt(r1^2 - a^2).
func (s Sphere[T]) IntersectSphereLens(other Sphere[T], epsilon T) (halfChord T, ok bool) {
	diff := other.center.Sub(s.center)
	d2 := diff.SqNorm()
	if d2 <= 0 {
		return 0, false
	}
	d := math.Sqrt(float64(d2))
	a := (float64(d2) + float64(s.sqRadius) - float64(other.sqRadius)) / (2 * d)
	h2 := float64(s.sqRadius) - a*a
	if h2 < float64(-epsilon) {
		return 0, false
	}
	if h2 < 0 {
		h2 = 0
	}
	h := T(math.Sqrt(h2))
	return h, true
}
