package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	invTolerance  = 1e-10
	maxBisectIter = 200

	// Gauss-Legendre node count for moment quadrature.
	momentQuadNodes = 200
)

// InvCDF returns the quantile of d at probability q: the x with
// Cumulative(x) = q, found by bisection between the support bounds.
// Infinite bounds are replaced by an expanding bracket around the
// finite side (or zero). Returns NaN when no bracket can be found,
// e.g. for the improper uniform fallback.
func InvCDF(d Distribution, q float64) float64 {
	lo, up := d.Bounds()
	if math.IsInf(lo, -1) || math.IsInf(up, 1) {
		var ok bool
		lo, up, ok = bracket(d, q, lo, up)
		if !ok {
			return math.NaN()
		}
	}

	f := func(x float64) float64 { return cumulativeAt(d, x) - q }

	flo, fup := f(lo), f(up)
	if flo >= 0 {
		return lo
	}
	if fup <= 0 {
		return up
	}

	for i := 0; i < maxBisectIter && up-lo > invTolerance*(1+math.Abs(lo)); i++ {
		mid := lo + (up-lo)/2
		if f(mid) < 0 {
			lo = mid
		} else {
			up = mid
		}
	}
	return lo + (up-lo)/2
}

// InvCDFEach returns InvCDF(d, qs[i]) for each i.
func InvCDFEach(d Distribution, qs []float64) []float64 {
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = InvCDF(d, q)
	}
	return out
}

// SampleN draws n values from d by inverse-transform sampling. A nil
// src uses the global random source.
func SampleN(d Distribution, n int, src rand.Source) []float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = InvCDF(d, u.Rand())
	}
	return out
}

// Moment returns the raw moment E[X^order] of d by Gauss-Legendre
// quadrature over the support. The density integral over the support
// is used as the normalizer, so truncated distributions whose density
// mass differs from 1 still yield proper moments. Infinite bounds
// yield NaN.
func Moment(d Distribution, order int) float64 {
	lo, up := d.Bounds()
	if math.IsInf(lo, 0) || math.IsInf(up, 0) {
		return math.NaN()
	}

	density := func(x float64) float64 { return densityAt(d, x) }
	weighted := func(x float64) float64 { return math.Pow(x, float64(order)) * densityAt(d, x) }

	mass := quad.Fixed(density, lo, up, momentQuadNodes, nil, 0)
	if mass == 0 {
		return math.NaN()
	}
	return quad.Fixed(weighted, lo, up, momentQuadNodes, nil, 0) / mass
}

func cumulativeAt(d Distribution, x float64) float64 {
	return d.Cumulative([]float64{x})[0]
}

func densityAt(d Distribution, x float64) float64 {
	return d.Density([]float64{x})[0]
}

// bracket grows a finite [lo, up] interval around the support until it
// encloses the quantile q.
func bracket(d Distribution, q, lo, up float64) (float64, float64, bool) {
	if math.IsInf(lo, -1) {
		lo = -1
		if !math.IsInf(up, 1) {
			lo = up - 1
		}
	}
	if math.IsInf(up, 1) {
		up = lo + 2
	}

	for i := 0; i < 64; i++ {
		clo, cup := cumulativeAt(d, lo), cumulativeAt(d, up)
		if math.IsNaN(clo) || math.IsNaN(cup) {
			return 0, 0, false
		}
		if clo <= q && cup >= q {
			return lo, up, true
		}
		width := up - lo
		if clo > q {
			lo -= width
		}
		if cup < q {
			up += width
		}
	}
	return 0, 0, false
}
