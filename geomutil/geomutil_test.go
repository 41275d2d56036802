package geomutil

import (
	"testing"

	"github.com/movetk-go/movetk/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqDistPointPoint(t *testing.T) {
	p := kernel.NewPoint2(0.0, 0.0)
	q := kernel.NewPoint2(3.0, 4.0)
	assert.InDelta(t, 25.0, SqDistPointPoint(p, q), 1e-9)
}

func TestSqDistPointSegmentClampsToEndpoints(t *testing.T) {
	s := kernel.NewSegment(kernel.NewPoint2(0.0, 0.0), kernel.NewPoint2(10.0, 0.0))

	// Before the segment start: closest point is s.A().
	before := kernel.NewPoint2(-3.0, 4.0)
	assert.InDelta(t, 25.0, SqDistPointSegment(before, s), 1e-9)

	// Past the segment end: closest point is s.B().
	after := kernel.NewPoint2(13.0, 4.0)
	assert.InDelta(t, 25.0, SqDistPointSegment(after, s), 1e-9)

	// Perpendicular to the middle.
	mid := kernel.NewPoint2(5.0, 3.0)
	assert.InDelta(t, 9.0, SqDistPointSegment(mid, s), 1e-9)
}

func TestSqDistPointLineNoClamp(t *testing.T) {
	l := NewLine(kernel.NewPoint2(0.0, 0.0), kernel.NewPoint2(10.0, 0.0))
	// Far outside the segment's span, but the infinite line still measures
	// only the perpendicular offset.
	p := kernel.NewPoint2(100.0, 3.0)
	assert.InDelta(t, 9.0, SqDistPointLine(p, l), 1e-9)
}

func TestMBRTangentDisksCollapseToCenter(t *testing.T) {
	pu := kernel.NewPoint2(0.0, 0.0)
	pv := kernel.NewPoint2(10.0, 0.0)
	p1, p2 := MBR(pu, 5.0, pv, 5.0, 1e-9)
	assert.True(t, p1.Eq(pu, 1e-6))
	assert.True(t, p2.Eq(pu, 1e-6))
}

func TestMBROverlappingDisksProducesDistinctCorners(t *testing.T) {
	pu := kernel.NewPoint2(0.0, 0.0)
	pv := kernel.NewPoint2(6.0, 0.0)
	p1, p2 := MBR(pu, 5.0, pv, 5.0, 1e-9)
	assert.False(t, p1.Eq(p2, 1e-6))
}

func TestNewWedgeEmptyWhenApexInsideDisk(t *testing.T) {
	apex := kernel.NewPoint2(0.0, 0.0)
	center := kernel.NewPoint2(1.0, 1.0)
	w := NewWedge(apex, center, 10.0, 1e-9)
	assert.True(t, w.IsEmpty())
}

func TestNewWedgeContainsCenterDirection(t *testing.T) {
	apex := kernel.NewPoint2(0.0, 0.0)
	center := kernel.NewPoint2(10.0, 5.0)
	w := NewWedge(apex, center, 2.0, 1e-9)
	a := assert.New(t)
	a.False(w.IsEmpty())
	// A point along the apex-to-center ray, beyond the disk, must lie
	// inside the wedge.
	along := kernel.NewPoint2(20.0, 10.0)
	a.True(w.Contains(along, 1e-6))
}

func TestNewWedgeRejectsAxisAligned(t *testing.T) {
	apex := kernel.NewPoint2(0.0, 0.0)
	horizontal := kernel.NewPoint2(10.0, 0.0)
	w := NewWedge(apex, horizontal, 1.0, 1e-9)
	assert.True(t, w.IsEmpty())
}

func TestIntersectEmptyWhenEitherInputEmpty(t *testing.T) {
	apex := kernel.NewPoint2(0.0, 0.0)
	empty := Wedge[float64]{}
	valid := NewWedge(apex, kernel.NewPoint2(10.0, 5.0), 2.0, 1e-9)
	result := Intersect(empty, valid, 1e-9)
	assert.True(t, result.IsEmpty())
}

func TestIntersectOfIdenticalWedgesIsUnchanged(t *testing.T) {
	apex := kernel.NewPoint2(0.0, 0.0)
	w := NewWedge(apex, kernel.NewPoint2(10.0, 5.0), 2.0, 1e-9)
	result := Intersect(w, w, 1e-9)
	assert.False(t, result.IsEmpty())

	along := kernel.NewPoint2(20.0, 10.0)
	assert.True(t, result.Contains(along, 1e-6))
}

func TestMBRCornerOffsetMatchesLensHalfChord(t *testing.T) {
	pu := kernel.NewPoint2(0.0, 0.0)
	pv := kernel.NewPoint2(6.0, 0.0)
	ru, rv := 5.0, 5.0

	su := kernel.NewSphere(pu, ru*ru)
	sv := kernel.NewSphere(pv, rv*rv)
	h, ok := su.IntersectSphereLens(sv, 1e-9)
	require.True(t, ok)

	p1, _ := MBR(pu, ru, pv, rv, 1e-9)
	// p1 = pu + dHat*ru + dPerp*h, where dHat is the unit vector pu->pv.
	want := kernel.NewPoint2(ru, h)
	assert.InDelta(t, want.X(), p1.X(), 1e-6)
	assert.InDelta(t, want.Y(), p1.Y(), 1e-6)
}
