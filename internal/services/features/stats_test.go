package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]float64{5, 5, 5}))
	// population variance of {1,2,3} is 2/3
	assert.InDelta(t, 2.0/3.0, Variance([]float64{1, 2, 3}), 1e-12)
}

func TestWeightedMeanBiasesRecent(t *testing.T) {
	// weights 1..3: (1*1 + 2*2 + 3*3) / 6 = 14/6
	assert.InDelta(t, 14.0/6.0, WeightedMean([]float64{1, 2, 3}), 1e-12)
	// the weighted mean of a rising series sits above the plain mean
	xs := []float64{1, 2, 3, 4, 5}
	assert.Greater(t, WeightedMean(xs), Mean(xs))
}

func TestPctReturns(t *testing.T) {
	assert.Nil(t, PctReturns([]float64{1}))

	rets := PctReturns([]float64{1, 1.1, 0.99})
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.1, rets[0], 1e-12)
	assert.InDelta(t, -0.1, rets[1], 1e-12)

	// non-positive previous price yields a zero return for that step
	rets = PctReturns([]float64{0, 2})
	require.Len(t, rets, 1)
	assert.Equal(t, 0.0, rets[0])
}

func TestDeltas(t *testing.T) {
	assert.Nil(t, Deltas(nil))
	assert.Equal(t, []float64{1, -3}, Deltas([]float64{2, 3, 0}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(-5, 0.1, 0.95))
	assert.Equal(t, 0.95, Clamp(5, 0.1, 0.95))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 0.95))
}

func TestTail(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	assert.Equal(t, []float64{3, 4}, Tail(xs, 2))
	assert.Equal(t, xs, Tail(xs, 10))
	assert.Equal(t, xs, Tail(xs, 0))
}
