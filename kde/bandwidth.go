package kde

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type BandWidth interface {
	// BandWidth selects a kernel bandwidth for the samples x. A nil
	// weights slice means uniform weighting.
	BandWidth(x, weights []float64) float64
}

// ScottBandWidth selects h = sigma * n^(-1/5) (Scott's rule for one
// dimension, n^(-1/(d+4)) with d=1), sigma the sample standard deviation
// with the n-1 divisor. For weighted samples n is the effective sample
// count (sum w)^2 / sum w^2.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
type ScottBandWidth struct{}

func NewScottBandWidth() *ScottBandWidth {
	return &ScottBandWidth{}
}

func (bw *ScottBandWidth) BandWidth(x, weights []float64) float64 {
	return stat.StdDev(x, weights) * math.Pow(effectiveCount(x, weights), -0.2)
}

// SilvermanBandWidth selects h = sigma * (3n/4)^(-1/5), the
// one-dimensional form of (n(d+2)/4)^(-1/(d+4)).
//
// Silverman, B. W. (1986) Density Estimation.
type SilvermanBandWidth struct{}

func NewSilvermanBandWidth() *SilvermanBandWidth {
	return &SilvermanBandWidth{}
}

func (bw *SilvermanBandWidth) BandWidth(x, weights []float64) float64 {
	return stat.StdDev(x, weights) * math.Pow(effectiveCount(x, weights)*3.0/4.0, -0.2)
}

func effectiveCount(x, weights []float64) float64 {
	if weights == nil {
		return float64(len(x))
	}
	var sum, sumSq float64
	for _, w := range weights {
		sum += w
		sumSq += w * w
	}
	if sumSq == 0 {
		return 0
	}
	return sum * sum / sumSq
}
