package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BinPulse/internal/domain/models"
)

func TestPredictEmptyHistory(t *testing.T) {
	p := NewPricePredictor(testConfig(), newHistory(t))

	pred := p.Predict(15)
	assert.Equal(t, 0, pred.PredictedBinID)
	assert.True(t, pred.PredictedPrice.IsZero())
	assert.Equal(t, 0.1, pred.Confidence)
	assert.Equal(t, models.TrendNeutral, pred.Trend)
	assert.Equal(t, 15, pred.TimeHorizonMinutes)
}

func TestPredictShortHistoryFallsBackToLastSample(t *testing.T) {
	h := newHistory(t, flatSamples(5, 42, 2.5)...)
	p := NewPricePredictor(testConfig(), h)

	pred := p.Predict(30)
	assert.Equal(t, 42, pred.PredictedBinID)
	assert.InDelta(t, 2.5, pred.PredictedPrice.InexactFloat64(), 1e-12)
	assert.Equal(t, 0.1, pred.Confidence)
	assert.Equal(t, models.TrendNeutral, pred.Trend)
}

func TestPredictFlatHistoryIsNeutral(t *testing.T) {
	h := newHistory(t, flatSamples(30, 110, 1.0)...)
	p := NewPricePredictor(testConfig(), h)

	pred := p.Predict(15)
	assert.Equal(t, models.TrendNeutral, pred.Trend)
	assert.Equal(t, 110, pred.PredictedBinID)
	assert.InDelta(t, 1.0, pred.PredictedPrice.InexactFloat64(), 1e-9)
	// zero variance gives maximum confidence
	assert.Equal(t, 0.95, pred.Confidence)
}

func TestPredictRisingHistoryIsBullish(t *testing.T) {
	// 25 samples, 1.00 to 1.24 in 0.01 steps, bin ids 0..24
	h := newHistory(t, risingSamples(25, 1.00, 0.01)...)
	p := NewPricePredictor(testConfig(), h)

	pred := p.Predict(15)
	assert.Equal(t, models.TrendBullish, pred.Trend)
	assert.Greater(t, pred.Confidence, 0.1)
	assert.LessOrEqual(t, pred.Confidence, 0.95)
	// the WMA lags the last price, so the predicted bin sits below bin 24
	assert.Greater(t, pred.PredictedPrice.InexactFloat64(), 1.0)
	assert.Less(t, pred.PredictedBinID, 24)
}

func TestPredictFallingHistoryIsBearish(t *testing.T) {
	h := newHistory(t, risingSamples(25, 2.00, -0.01)...)
	p := NewPricePredictor(testConfig(), h)

	pred := p.Predict(15)
	assert.Equal(t, models.TrendBearish, pred.Trend)
}

func TestPredictConfidenceStaysClampedUnderExtremeVariance(t *testing.T) {
	samples := make([]models.BinSample, 0, 20)
	for i := 0; i < 20; i++ {
		price := 1.0
		if i%2 == 1 {
			price = 1000.0
		}
		samples = append(samples, binSample(int64(i), i, price))
	}
	p := NewPricePredictor(testConfig(), newHistory(t, samples...))

	pred := p.Predict(15)
	assert.Equal(t, 0.1, pred.Confidence)
}

func TestPredictLongerHorizonExtrapolatesFurther(t *testing.T) {
	h := newHistory(t, risingSamples(25, 1.00, 0.01)...)
	p := NewPricePredictor(testConfig(), h)

	short := p.Predict(15)
	long := p.Predict(60)
	assert.True(t, long.PredictedPrice.GreaterThan(short.PredictedPrice))
}

func TestPredictIsIdempotent(t *testing.T) {
	h := newHistory(t, risingSamples(25, 1.00, 0.01)...)
	p := NewPricePredictor(testConfig(), h)

	first := p.Predict(15)
	second := p.Predict(15)
	require.Equal(t, first, second)
}
