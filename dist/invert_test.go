package dist

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestInvCDFUniform(t *testing.T) {
	u := NewUniform(2, 5)

	assert.InDelta(t, 2.0, InvCDF(u, 0), 1e-9)
	assert.InDelta(t, 3.5, InvCDF(u, 0.5), 1e-6)
	assert.InDelta(t, 5.0, InvCDF(u, 1), 1e-9)

	for _, q := range []float64{0.1, 0.33, 0.5, 0.77, 0.99} {
		x := InvCDF(u, q)
		assert.InDelta(t, q, u.Cumulative([]float64{x})[0], 1e-6, "round trip at q=%v", q)
	}
}

func TestInvCDFImproperUniform(t *testing.T) {
	u := NewUniform(math.Inf(-1), math.Inf(1))
	assert.True(t, math.IsNaN(InvCDF(u, 0.5)))
}

func TestInvCDFHalfBounded(t *testing.T) {
	// A finite uniform reported through a half-open bound still inverts
	// via bracket expansion.
	u := NewUniform(0, 1)
	lo, up, ok := bracket(u, 0.5, math.Inf(-1), math.Inf(1))
	require.True(t, ok)
	assert.LessOrEqual(t, u.Cumulative([]float64{lo})[0], 0.5)
	assert.GreaterOrEqual(t, u.Cumulative([]float64{up})[0], 0.5)
}

func TestSampleN(t *testing.T) {
	d := scenarioDist(t)
	src := rand.NewSource(1)

	draws := SampleN(d, 200, src)
	require.Len(t, draws, 200)

	lower, upper := d.Bounds()
	var mean float64
	for _, x := range draws {
		assert.GreaterOrEqual(t, x, lower)
		assert.LessOrEqual(t, x, upper)
		mean += x
	}
	mean /= float64(len(draws))

	// The estimate is symmetric around 1.
	assert.InDelta(t, 1.0, mean, 0.15)
}

func TestMomentUniform(t *testing.T) {
	u := NewUniform(2, 5)

	assert.InDelta(t, 1.0, Moment(u, 0), 1e-9)
	assert.InDelta(t, 3.5, Moment(u, 1), 1e-9)
	assert.InDelta(t, 13.0, Moment(u, 2), 1e-6)
}

func TestMomentSampleDist(t *testing.T) {
	d := scenarioDist(t)

	// Symmetric samples around 1.
	assert.InDelta(t, 1.0, Moment(d, 1), 1e-3)
}

func TestMomentUnboundedIsNaN(t *testing.T) {
	d := FromSamples(context.Background(), []float64{5, 5, 5}, nil)
	assert.True(t, math.IsNaN(Moment(d, 1)))
}
