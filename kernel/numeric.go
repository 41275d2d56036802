package kernel

// DefaultEpsilon is the machine-epsilon-like tolerance (ε_mach in spec §6).
// The Imai-Iri wedge sweep in simplify uses it for its wedge tests; other
// algorithms take their comparison tolerance as an explicit argument.
const DefaultEpsilon = 1e-5

// Options bundles the small set of knobs shared by the geometric/algorithmic
// value types in this module. Zero-value Options is not usable directly;
// build one with ApplyOptions and a default.
type Options struct {
	// Epsilon is the tolerance used for floating-point equality tests.
	Epsilon float64
}

// Option is a functional option modifying an Options value, following the
// same pattern as geom2d's options package: construction stays a single
// variadic call, and defaults live in one place per algorithm.
type Option func(*Options)

// WithEpsilon overrides the tolerance used for floating-point comparisons.
// A non-positive epsilon is ignored and the previous value is kept.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) {
		if epsilon > 0 {
			o.Epsilon = epsilon
		}
	}
}

// ApplyOptions starts from defaults and applies opts in order.
func ApplyOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// DefaultOptions returns the package-wide default Options value (epsilon =
// DefaultEpsilon).
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// FloatEquals returns true if a and b are equal within epsilon.
func FloatEquals[T Number](a, b, epsilon T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// FloatGreaterThan returns true if a is significantly greater than b.
func FloatGreaterThan[T Number](a, b, epsilon T) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThanOrEqualTo returns true if a is greater than, or
// approximately equal to, b.
func FloatGreaterThanOrEqualTo[T Number](a, b, epsilon T) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThan returns true if a is significantly less than b.
func FloatLessThan[T Number](a, b, epsilon T) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo returns true if a is less than, or approximately
// equal to, b.
func FloatLessThanOrEqualTo[T Number](a, b, epsilon T) bool {
	return a < b || FloatEquals(a, b, epsilon)
}
