package kde

import (
	"math"
	"sort"

	"github.com/probkit/sampledist/common"
	"gonum.org/v1/gonum/floats"
)

// Univariate is a one-dimensional Gaussian kernel density estimate.
// It is fully fitted at construction and immutable afterwards, so
// concurrent queries are safe.
type Univariate struct {
	// Endog holds the sample values, sorted ascending.
	Endog []float64

	// Weights holds the sample weights, nil for uniform weighting.
	Weights []float64

	bw     float64
	kernel *GaussianKernel
}

// NewUnivariate fits a kernel density estimate over the samples using
// the given bandwidth rule (Scott when nil). The bandwidth becomes
// bw * bwAdjust; bwAdjust <= 0 means no adjustment.
//
// Returns common.ErrorSingularData when the sample spread is zero or
// non-finite, since no bandwidth can be estimated from such data.
func NewUnivariate(endog []float64, weights []float64, bwAdjust float64, rule BandWidth) (*Univariate, error) {
	if len(endog) < 2 {
		return nil, common.ErrorSingularData
	}
	if len(weights) > 0 && len(weights) != len(endog) {
		return nil, common.ErrorInvalidValue
	}
	if len(weights) == 0 {
		weights = nil
	}

	samples := make([]float64, len(endog))
	copy(samples, endog)
	if weights == nil {
		sort.Float64s(samples)
	}

	if bwAdjust <= 0 {
		bwAdjust = 1.0
	}
	if rule == nil {
		rule = NewScottBandWidth()
	}

	bw := rule.BandWidth(samples, weights) * bwAdjust
	if bw == 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return nil, common.ErrorSingularData
	}

	kernel := NewGaussianKernel()
	kernel.SetH(bw)
	if weights != nil {
		kernel.SetWeights(weights)
	}

	return &Univariate{
		Endog:   samples,
		Weights: weights,
		bw:      bw,
		kernel:  kernel,
	}, nil
}

func (k *Univariate) Bandwidth() float64 {
	return k.bw
}

// Density evaluates the estimate at x.
func (k *Univariate) Density(x float64) float64 {
	return k.kernel.Density(k.Endog, x)
}

// IntegrateBox returns the estimate's mass on [a, b]. The anchor is
// arbitrary: cumulative values are obtained as IntegrateBox(ref, x)
// differences against a fixed reference point.
func (k *Univariate) IntegrateBox(a, b float64) float64 {
	return k.kernel.IntegrateBox(k.Endog, a, b)
}

// Min returns the smallest sample value.
func (k *Univariate) Min() float64 {
	return floats.Min(k.Endog)
}

// Max returns the largest sample value.
func (k *Univariate) Max() float64 {
	return floats.Max(k.Endog)
}
