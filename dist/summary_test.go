package dist

import (
	"context"
	"math"
	"testing"

	"github.com/probkit/sampledist/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileSummary(t *testing.T) {
	d := scenarioDist(t)

	summary, err := QuantileSummary(context.Background(), d, []float64{0.25, 0.5, 0.75})
	require.NoError(t, err)

	median, ok := summary.GetQuantileValue(0.5)
	require.True(t, ok)
	assert.InDelta(t, 1.0, median.Value, 1e-3)
	assert.Equal(t, 0.5, median.Quantile)

	q25, ok := summary.GetQuantileValue(0.25)
	require.True(t, ok)
	assert.InDelta(t, 0.602, q25.Value, 1e-3)

	_, ok = summary.GetQuantileValue(0.99)
	assert.False(t, ok)
}

func TestQuantileSummaryDefaults(t *testing.T) {
	d := scenarioDist(t)

	summary, err := QuantileSummary(context.Background(), d, nil)
	require.NoError(t, err)
	assert.Len(t, summary.QuantileValues, len(DefaultQuantiles))
}

func TestQuantileSummarySkipsInvalid(t *testing.T) {
	d := scenarioDist(t)

	summary, err := QuantileSummary(context.Background(), d, []float64{-0.1, 0.5, 1.5})
	require.NoError(t, err)
	assert.Len(t, summary.QuantileValues, 1)
}

func TestQuantileSummaryFallbackDist(t *testing.T) {
	fallback := NewUniform(math.Inf(-1), math.Inf(1))

	summary, err := QuantileSummary(context.Background(), fallback, []float64{0.5})
	require.NoError(t, err)
	assert.Empty(t, summary.QuantileValues)
}

func TestQuantileSummaryNilDist(t *testing.T) {
	_, err := QuantileSummary(context.Background(), nil, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}
