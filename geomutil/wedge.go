package geomutil

import (
	"math"
	"sort"

	"github.com/movetk-go/movetk/kernel"
)

// tangentLine is one of the two boundary lines of a Wedge, represented as a
// slope/intercept pair plus the sign the interior-side half-plane test must
// take at points belonging to the wedge (spec §4.2: "Represented as two
// real numbers per tangent: slope m_i and intercept c_i").
type tangentLine[T kernel.Number] struct {
	m, c T
	sign int // +1 or -1: required sign of (p.y - (m*p.x+c)) for p to be on the wedge side
}

// test evaluates the signed vertical deviation of p from the line, which
// equals the cross product of the line's direction (1,m) with (p-apex).
func (l tangentLine[T]) test(p kernel.Point[T]) T {
	return p.Y() - (l.m*p.X() + l.c)
}

// inside reports whether p is on the wedge-interior side of this line,
// within epsilon.
func (l tangentLine[T]) inside(p kernel.Point[T], epsilon T) bool {
	v := l.test(p) * T(l.sign)
	return v >= -epsilon
}

// Wedge is the infinite cone from an apex, tangent to a disk (centre,
// radius), as used by Chan-Chin shortcut construction (spec §4.2). A Wedge
// is empty when the apex lies inside (or too close to) the disk, or when
// the apex-to-centre direction is axis-aligned within epsilon (the
// slope/intercept representation cannot express a vertical tangent line).
type Wedge[T kernel.Number] struct {
	apex        kernel.Point[T]
	line1, line2 tangentLine[T]
	empty       bool
}

// NewWedge constructs the wedge with apex A tangent to the disk with centre
// C and radius r. Per spec §4.2, the wedge is flagged empty (zero
// slopes/intercepts) when:
//   - |AC|^2 <= r^2 + epsilon (apex inside or touching the disk), or
//   - AC is (near-)horizontal (ACy ~ 0), or
//   - AC is (near-)vertical (ACx ~ 0).
func NewWedge[T kernel.Number](apex, center kernel.Point[T], radius, epsilon T) Wedge[T] {
	ac := center.Sub(apex)
	dx, dy := ac.At(0), ac.At(1)
	sqDist := ac.SqNorm()
	sqRadius := radius * radius

	if sqDist <= sqRadius+epsilon {
		return Wedge[T]{apex: apex, empty: true}
	}
	if kernel.FloatEquals(dy, T(0), epsilon) || kernel.FloatEquals(dx, T(0), epsilon) {
		return Wedge[T]{apex: apex, empty: true}
	}

	tanTheta := dy / dx
	tanBeta := T(math.Sqrt(float64(sqDist - sqRadius)))
	tanBeta = radius / tanBeta

	denomPlus := 1 - tanTheta*tanBeta
	denomMinus := 1 + tanTheta*tanBeta
	if denomPlus == 0 || denomMinus == 0 {
		return Wedge[T]{apex: apex, empty: true}
	}
	mPlus := (tanTheta + tanBeta) / denomPlus
	mMinus := (tanTheta - tanBeta) / denomMinus

	cPlus := apex.Y() - mPlus*apex.X()
	cMinus := apex.Y() - mMinus*apex.X()

	lPlus := tangentLine[T]{m: mPlus, c: cPlus}
	lMinus := tangentLine[T]{m: mMinus, c: cMinus}

	// Fix up the required sign on each line so that the disk centre tests
	// positive: "identify which side of AC gets m1 vs m2" (spec §4.2) is
	// resolved here by evaluating directly against the known interior point
	// C, rather than reasoning about the quadrant of AC in the abstract.
	lPlus.sign = signOf(lPlus.test(center))
	lMinus.sign = signOf(lMinus.test(center))
	if lPlus.sign == 0 {
		lPlus.sign = 1
	}
	if lMinus.sign == 0 {
		lMinus.sign = 1
	}

	return Wedge[T]{apex: apex, line1: lPlus, line2: lMinus}
}

func signOf[T kernel.Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsEmpty reports whether the wedge is degenerate (spec §4.2).
func (w Wedge[T]) IsEmpty() bool { return w.empty }

// Apex returns the wedge's apex point.
func (w Wedge[T]) Apex() kernel.Point[T] { return w.apex }

// Contains reports whether p lies inside the wedge: both tangent-line tests
// must place p on the wedge-interior side (spec §4.2: "p is inside iff one
// test is >= 0 and the other <= 0", which is exactly what the per-line sign
// convention computed in NewWedge normalizes to "both sides report true").
func (w Wedge[T]) Contains(p kernel.Point[T], epsilon T) bool {
	if w.empty {
		return false
	}
	return w.line1.inside(p, epsilon) && w.line2.inside(p, epsilon)
}

// Intersect returns the wedge representing the intersection of w1 and w2,
// which must share the same apex (as they do in the Chan-Chin shortcut
// sweep, spec §4.10). The four candidate tangent lines are sorted by slope
// and the inner two are kept as the result's boundary, per spec §4.2; the
// result is empty if either input is empty, or if the inner two lines span
// an opening angle of 180 degrees or more.
func Intersect[T kernel.Number](w1, w2 Wedge[T], epsilon T) Wedge[T] {
	if w1.empty || w2.empty {
		return Wedge[T]{apex: w1.apex, empty: true}
	}
	lines := []tangentLine[T]{w1.line1, w1.line2, w2.line1, w2.line2}
	sort.Slice(lines, func(i, j int) bool { return lines[i].m < lines[j].m })
	inner1, inner2 := lines[1], lines[2]

	angle1 := math.Atan(float64(inner1.m))
	angle2 := math.Atan(float64(inner2.m))
	opening := math.Abs(angle2 - angle1)
	if opening >= math.Pi-float64(epsilon) {
		return Wedge[T]{apex: w1.apex, empty: true}
	}

	return Wedge[T]{apex: w1.apex, line1: inner1, line2: inner2}
}
