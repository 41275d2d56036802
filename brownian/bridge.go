// Package brownian implements the Brownian-bridge movement model (C14,
// spec §4.13): per-bridge parameter construction, maximum-likelihood
// variance estimation via golden-section search, and quantile-based
// parameter selection.
package brownian

import (
	"fmt"

	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// Bridge is one Brownian-bridge segment built from the overlapping triple
// (p_2i, p_2i+1, p_2i+2): Anchor is the projected middle probe, Mu is the
// time-weighted interpolation between the outer two, and Weight is
// alpha*(1-alpha)*deltaT, the scale factor the per-bridge log-likelihood
// divides the variance by (spec §4.13).
type Bridge struct {
	Anchor, Mu kernel.Point[float64]
	Weight     float64
}

// SqDisplacement returns ||Anchor-Mu||^2, the per-bridge observed squared
// deviation from its predicted mean.
func (b Bridge) SqDisplacement() float64 {
	v := b.Anchor.Sub(b.Mu)
	return v.Dot(v)
}

// BuildBridges partitions probes into overlapping triples and builds one
// Bridge per triple, projecting geographic coordinates to a local tangent
// plane centred on the first probe (spec §4.13). probes must have at least
// 3 samples and strictly increasing timestamps.
func BuildBridges(probes []trajectory.Probe) ([]Bridge, error) {
	if len(probes) < 3 {
		return nil, fmt.Errorf("%w: Brownian-bridge construction requires at least 3 probes", trajectory.ErrInvalidInput)
	}
	if err := trajectory.ValidateMonotone(probes); err != nil {
		return nil, err
	}
	ref := geoproj.NewLocalReference(probes[0].Lat, probes[0].Lon)
	project := func(p trajectory.Probe) kernel.Point[float64] {
		if p.Projected != nil {
			return *p.Projected
		}
		x, y := ref.Project(p.Lat, p.Lon)
		return kernel.NewPoint2(x, y)
	}

	var bridges []Bridge
	for i := 0; i+2 < len(probes); i += 2 {
		p0, p1, p2 := probes[i], probes[i+1], probes[i+2]
		deltaT := p2.Timestamp - p0.Timestamp
		alpha := (p1.Timestamp - p0.Timestamp) / deltaT

		anchor := project(p1)
		x0, y0 := project(p0).X(), project(p0).Y()
		x2, y2 := project(p2).X(), project(p2).Y()
		mu := kernel.NewPoint2((1-alpha)*x0+alpha*x2, (1-alpha)*y0+alpha*y2)

		bridges = append(bridges, Bridge{
			Anchor: anchor,
			Mu:     mu,
			Weight: alpha * (1 - alpha) * deltaT,
		})
	}
	return bridges, nil
}
