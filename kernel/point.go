package kernel

import "fmt"

// Point is a point in fixed dimension d ∈ {2,3}, with coordinates of a
// generic floating-point type T. Points are immutable value types: every
// method returns a new Point rather than mutating the receiver, mirroring
// geom2d's Point/Add/Sub convention.
type Point[T Number] struct {
	coords []T
}

// NewPoint2 constructs a 2D point.
func NewPoint2[T Number](x, y T) Point[T] {
	return Point[T]{coords: []T{x, y}}
}

// NewPoint3 constructs a 3D point.
func NewPoint3[T Number](x, y, z T) Point[T] {
	return Point[T]{coords: []T{x, y, z}}
}

// NewPoint constructs a Point from an explicit coordinate slice. Panics if
// dim is not 2 or 3: a kernel point outside that dimension range is a
// programmer error, not a recoverable input condition (spec §1).
func NewPoint[T Number](coords ...T) Point[T] {
	if len(coords) != 2 && len(coords) != 3 {
		panic(fmt.Errorf("kernel: point dimension must be 2 or 3, got %d", len(coords)))
	}
	cp := make([]T, len(coords))
	copy(cp, coords)
	return Point[T]{coords: cp}
}

// Dim returns the dimension of the point (2 or 3).
func (p Point[T]) Dim() int {
	return len(p.coords)
}

// Coord returns the i-th coordinate of the point, 0-indexed.
func (p Point[T]) Coord(i int) T {
	return p.coords[i]
}

// X returns the first coordinate.
func (p Point[T]) X() T { return p.coords[0] }

// Y returns the second coordinate.
func (p Point[T]) Y() T { return p.coords[1] }

// Z returns the third coordinate. Panics if the point is 2D.
func (p Point[T]) Z() T { return p.coords[2] }

// Add returns p translated by vector v.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	out := make([]T, len(p.coords))
	for i := range out {
		out[i] = p.coords[i] + v.At(i)
	}
	return Point[T]{coords: out}
}

// Sub returns the vector p - q, i.e. the vector pointing from q to p,
// matching the perpendicular-foot rule of spec §4.1 where u = P - S[0].
func (p Point[T]) Sub(q Point[T]) Vector[T] {
	out := make([]T, len(p.coords))
	for i := range out {
		out[i] = p.coords[i] - q.coords[i]
	}
	return Vector[T]{coords: out}
}

// Eq reports whether p and q are equal within epsilon on every coordinate.
func (p Point[T]) Eq(q Point[T], epsilon T) bool {
	for i := range p.coords {
		if !FloatEquals(p.coords[i], q.coords[i], epsilon) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (p Point[T]) String() string {
	return fmt.Sprintf("%v", p.coords)
}
