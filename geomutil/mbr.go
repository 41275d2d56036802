package geomutil

import (
	"math"

	"github.com/movetk-go/movetk/kernel"
)

// MBR computes the minimum bounding rectangle of the lens formed by the
// intersection of two disks (centre Pu, radius ru) and (centre Pv, radius
// rv), returned as its two diagonally opposite corners (spec §4.3).
//
// If the disks are tangent (half-chord within epsilon of zero), disjoint,
// nested, or share a centre, both returned points equal Pu.
func MBR[T kernel.Number](pu kernel.Point[T], ru T, pv kernel.Point[T], rv T, epsilon T) (p1, p2 kernel.Point[T]) {
	su := kernel.NewSphere(pu, ru*ru)
	sv := kernel.NewSphere(pv, rv*rv)

	h, ok := su.IntersectSphereLens(sv, epsilon)
	if !ok || h <= epsilon {
		return pu, pu
	}

	d := pv.Sub(pu)
	dist := T(math.Sqrt(float64(d.SqNorm())))
	if dist == 0 {
		return pu, pu
	}
	dHat := d.Scale(1 / dist)
	// 90-degree CCW rotation of dHat = (-y, x).
	dPerp := kernel.NewVector2(-dHat.At(1), dHat.At(0))

	p1 = pu.Add(dHat.Scale(ru)).Add(dPerp.Scale(h))
	p2 = pv.Add(dHat.Scale(-rv)).Add(dPerp.Scale(-h))
	return p1, p2
}
