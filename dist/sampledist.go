package dist

import (
	"context"
	"fmt"
	"math"

	"github.com/probkit/sampledist/kde"
	"github.com/probkit/sampledist/model"
	"github.com/probkit/sampledist/utils"
	"go.uber.org/zap"
)

// sampleDist is a distribution backed by a kernel density estimate,
// truncated to [lower, upper] and renormalized so its cumulative hits
// 0 and 1 exactly at those bounds.
type sampleDist struct {
	kernel *kde.Univariate

	lower float64
	upper float64

	// Unnormalized cumulative mass from the integration anchor up to
	// lower and upper. Computed once at construction; every cumulative
	// query is rescaled against these so that Cumulative(lower) = 0 and
	// Cumulative(upper) = 1.
	cdfLower float64
	cdfUpper float64
}

// cdfAnchor is the fixed reference point cumulative integrals are taken
// from. Only differences against it matter.
const cdfAnchor = 0.0

// FromSamples builds a distribution from sample values by kernel
// density estimation with Scott's bandwidth rule.
//
// clip declares the truncation interval of the support; nil, or a NaN
// field, defaults the corresponding bound to the sample minimum or
// maximum. Bound ordering is not validated: clip.Lower < clip.Upper is
// the caller's responsibility.
//
// When the samples are degenerate (fewer than two values, or zero
// spread so the kernel bandwidth is singular), FromSamples does not
// fail: it returns the improper uniform over (-inf, +inf), signalling
// that no shape could be estimated.
func FromSamples(ctx context.Context, samples []float64, clip *model.Clip) Distribution {
	return FromWeightedSamples(ctx, samples, nil, clip)
}

// FromWeightedSamples is FromSamples with per-sample weights; nil
// weights means uniform weighting.
func FromWeightedSamples(ctx context.Context, samples, weights []float64, clip *model.Clip) Distribution {
	logger := utils.GetLogger(ctx)

	kernel, err := kde.NewUnivariate(samples, weights, 1.0, nil)
	if err != nil {
		logger.Warn("sample data is degenerate, falling back to unbounded uniform",
			zap.Error(err), zap.Int("sampleCnt", len(samples)))
		return NewUniform(math.Inf(-1), math.Inf(1))
	}

	lower, upper := math.NaN(), math.NaN()
	if clip != nil {
		lower, upper = clip.Lower, clip.Upper
	}
	if math.IsNaN(lower) {
		lower = kernel.Min()
	}
	if math.IsNaN(upper) {
		upper = kernel.Max()
	}

	return &sampleDist{
		kernel:   kernel,
		lower:    lower,
		upper:    upper,
		cdfLower: kernel.IntegrateBox(cdfAnchor, lower),
		cdfUpper: kernel.IntegrateBox(cdfAnchor, upper),
	}
}

// Density returns the raw kernel density estimate at each point.
//
// Note the asymmetry with Cumulative: the density is not divided by
// the truncated mass (cdfUpper - cdfLower), so it does not integrate
// to 1 over [lower, upper] and is not the exact derivative of the
// rescaled cumulative.
func (d *sampleDist) Density(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.kernel.Density(x)
	}
	return out
}

func (d *sampleDist) Cumulative(xs []float64) []float64 {
	out := make([]float64, len(xs))
	scale := d.cdfUpper - d.cdfLower
	for i, x := range xs {
		raw := d.kernel.IntegrateBox(cdfAnchor, x)
		out[i] = (raw - d.cdfLower) / scale
	}
	return out
}

func (d *sampleDist) Bounds() (float64, float64) {
	return d.lower, d.upper
}

func (d *sampleDist) String() string {
	return fmt.Sprintf("sample_dist(lo=%v, up=%v)", d.lower, d.upper)
}
