package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BinPulse/internal/domain/models"
)

func TestForecastShortHistoryFallsBack(t *testing.T) {
	f := NewVolatilityForecaster(testConfig(), newHistory(t, flatSamples(19, 1, 1.0)...))

	vol := f.Forecast()
	assert.Equal(t, 0.0, vol.CurrentVolatilityPct)
	assert.Equal(t, 0.0, vol.PredictedVolatilityPct)
	assert.Equal(t, 0.0, vol.FeeSpikeProbability)
	assert.Equal(t, 100, vol.OptimalBinSpread)
}

func TestForecastFlatHistory(t *testing.T) {
	f := NewVolatilityForecaster(testConfig(), newHistory(t, flatSamples(20, 1, 1.0)...))

	vol := f.Forecast()
	assert.InDelta(t, 0.0, vol.CurrentVolatilityPct, 1e-9)
	assert.InDelta(t, 0.0, vol.FeeSpikeProbability, 1e-9)
	assert.Equal(t, 50, vol.OptimalBinSpread)
}

func TestForecastRisingHistory(t *testing.T) {
	f := NewVolatilityForecaster(testConfig(), newHistory(t, risingSamples(25, 1.00, 0.01)...))

	vol := f.Forecast()
	assert.Greater(t, vol.CurrentVolatilityPct, 0.0)
	assert.Greater(t, vol.PredictedVolatilityPct, 0.0)
	assert.GreaterOrEqual(t, vol.OptimalBinSpread, 50)
	assert.GreaterOrEqual(t, vol.FeeSpikeProbability, 0.0)
	assert.LessOrEqual(t, vol.FeeSpikeProbability, 1.0)
}

func TestForecastFeeSpikeSaturates(t *testing.T) {
	samples := make([]models.BinSample, 0, 20)
	for i := 0; i < 20; i++ {
		price := 1.0
		if i%2 == 1 {
			price = 5.0
		}
		samples = append(samples, binSample(int64(i), i, price))
	}
	f := NewVolatilityForecaster(testConfig(), newHistory(t, samples...))

	vol := f.Forecast()
	assert.Equal(t, 1.0, vol.FeeSpikeProbability)
	assert.Greater(t, vol.OptimalBinSpread, 100)
}

func TestForecastIsIdempotent(t *testing.T) {
	f := NewVolatilityForecaster(testConfig(), newHistory(t, risingSamples(25, 1.00, 0.01)...))

	first := f.Forecast()
	second := f.Forecast()
	require.Equal(t, first, second)
}
