package trajectory

import (
	"fmt"

	"github.com/movetk-go/movetk/kernel"
)

// Probe is a single geolocated, timestamped sample (spec §3). Lat/Lon are
// in degrees, Timestamp is seconds since an arbitrary caller-chosen epoch.
// Speed, Heading and Projected are optional: a nil pointer means
// "not configured", matching spec's "optional
// (speed, heading, projected_xy)".
type Probe struct {
	Lat, Lon  float64
	Timestamp float64
	Speed     *float64
	Heading   *float64
	Projected *kernel.Point[float64]
}

// NewProbe constructs a Probe with only the required columns set.
func NewProbe(lat, lon, timestamp float64) Probe {
	return Probe{Lat: lat, Lon: lon, Timestamp: timestamp}
}

// WithSpeed returns a copy of p with Speed set.
func (p Probe) WithSpeed(speed float64) Probe {
	p.Speed = &speed
	return p
}

// WithHeading returns a copy of p with Heading set.
func (p Probe) WithHeading(heading float64) Probe {
	p.Heading = &heading
	return p
}

// WithProjected returns a copy of p with Projected set.
func (p Probe) WithProjected(xy kernel.Point[float64]) Probe {
	p.Projected = &xy
	return p
}

// ValidateMonotone checks that timestamps are strictly increasing across
// probes, the precondition spec §3 requires of every trajectory. Violation
// is reported as ErrInvalidInput, never a panic, since caller-supplied data
// routinely fails this (spec §7).
func ValidateMonotone(probes []Probe) error {
	for i := 1; i < len(probes); i++ {
		if probes[i].Timestamp <= probes[i-1].Timestamp {
			return fmt.Errorf("%w: timestamps not strictly increasing at index %d (%.6f <= %.6f)",
				ErrInvalidInput, i, probes[i].Timestamp, probes[i-1].Timestamp)
		}
	}
	return nil
}
