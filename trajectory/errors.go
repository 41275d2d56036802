// Package trajectory defines the Probe tuple, the error taxonomy of spec
// §7, and the statistics/utility functions of C19 that the rest of movetk's
// algorithm packages build on.
package trajectory

import "errors"

// Error taxonomy (spec §7). Algorithms wrap one of these with fmt.Errorf
// and "%w" to add call-specific context; callers use errors.Is against
// these sentinels.
var (
	// ErrInvalidInput covers empty input where >= 1 is required,
	// non-monotone timestamps, and non-positive tolerances/radii/windows.
	ErrInvalidInput = errors.New("movetk: invalid input")

	// ErrNumericDegeneracy covers apex-inside-disk wedges, undefined
	// perpendicular projections, and zero-Δt divisions.
	ErrNumericDegeneracy = errors.New("movetk: numeric degeneracy")

	// ErrNotConverged covers golden-section or bisection searches that
	// exhausted their iteration budget outside tolerance.
	ErrNotConverged = errors.New("movetk: search did not converge")

	// ErrNotFound covers a strong-Fréchet parametric search whose supplied
	// upper bound was too small to reach a feasible decision.
	ErrNotFound = errors.New("movetk: not found")
)
