package dist

import (
	"fmt"
	"math"
)

// Uniform is the uniform distribution on [Lower, Upper].
//
// The improper form NewUniform(math.Inf(-1), math.Inf(1)) is used as
// the non-informative fallback when sample data is too degenerate to
// estimate a shape: it carries no location information, its Density is
// zero everywhere and its Cumulative is not defined (NaN).
type Uniform struct {
	lower float64
	upper float64
}

func NewUniform(lower, upper float64) *Uniform {
	return &Uniform{lower: lower, upper: upper}
}

func (u *Uniform) Density(xs []float64) []float64 {
	out := make([]float64, len(xs))
	span := u.upper - u.lower
	for i, x := range xs {
		if math.IsInf(span, 1) {
			out[i] = 0
			continue
		}
		if x >= u.lower && x <= u.upper {
			out[i] = 1 / span
		}
	}
	return out
}

func (u *Uniform) Cumulative(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - u.lower) / (u.upper - u.lower)
	}
	return out
}

func (u *Uniform) Bounds() (float64, float64) {
	return u.lower, u.upper
}

func (u *Uniform) String() string {
	return fmt.Sprintf("uniform(lo=%v, up=%v)", u.lower, u.upper)
}
