// Package dist provides continuous probability distributions estimated
// from sample data, together with the generic inversion, sampling and
// moment utilities that operate on them.
package dist

// A Distribution is a continuous univariate probability distribution
// over a declared support interval.
//
// Implementations are immutable after construction: Density, Cumulative
// and Bounds never mutate internal state, so concurrent queries on one
// instance are safe.
type Distribution interface {
	// Density returns the probability density at each point of xs.
	Density(xs []float64) []float64

	// Cumulative returns the cumulative probability at each point of
	// xs, normalized so that Cumulative(lower) = 0 and
	// Cumulative(upper) = 1 at the declared bounds. Values for points
	// outside the bounds extrapolate the same scaling and may fall
	// outside [0, 1]; callers needing strict [0, 1] must clamp.
	Cumulative(xs []float64) []float64

	// Bounds returns the declared support interval, independent of any
	// query point.
	Bounds() (lower, upper float64)
}
