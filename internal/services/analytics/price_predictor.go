package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	"BinPulse/internal/services/features"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// PricePredictor forecasts the next price and active bin from the sample
// history using a recency-weighted average plus a momentum extrapolation.
type PricePredictor struct {
	cfg     config.PredictorConfig
	history domrepo.SampleHistory
	log     *logger.Logger
	metrics domrepo.Metrics
}

func NewPricePredictor(cfg *config.Config, history domrepo.SampleHistory) *PricePredictor {
	return &PricePredictor{cfg: cfg.Predictor, history: history}
}

// SetLogger injects a logger.
func (p *PricePredictor) SetLogger(l *logger.Logger) { p.log = l }

// SetMetrics injects a metrics recorder.
func (p *PricePredictor) SetMetrics(m domrepo.Metrics) { p.metrics = m }

// Predict forecasts price and bin over the given horizon. Histories shorter
// than the cold-start floor yield the last known price at minimum
// confidence with a neutral trend; this is a fallback, never an error.
func (p *PricePredictor) Predict(timeHorizonMinutes int) models.PricePrediction {
	start := time.Now()
	defer p.observe("predict", start)

	prices := p.history.Prices()
	if len(prices) < p.cfg.MinSamples {
		return p.fallback(timeHorizonMinutes)
	}

	last, _ := p.history.Last()
	lastPrice := prices[len(prices)-1]

	wma := features.WeightedMean(prices)

	window := features.Tail(prices, p.cfg.MomentumWindow)
	momentum := features.Mean(features.Deltas(window))

	predicted := wma + momentum*(float64(timeHorizonMinutes)/p.cfg.BaselineMinutes)

	confidence := p.cfg.MinConfidence
	if wma > 0 {
		confidence = features.Clamp(1-features.Variance(prices)/wma, p.cfg.MinConfidence, p.cfg.MaxConfidence)
	}

	trend := models.TrendNeutral
	switch {
	case momentum > p.cfg.TrendThreshold*wma:
		trend = models.TrendBullish
	case momentum < -p.cfg.TrendThreshold*wma:
		trend = models.TrendBearish
	}

	// Linear bin delta approximation: a 1% relative price move shifts the
	// bin by BinsPerUnitMove/100 bins.
	predictedBin := last.BinID
	if lastPrice != 0 {
		predictedBin += int(math.Round((predicted - lastPrice) / lastPrice * p.cfg.BinsPerUnitMove))
	}

	p.log.Debug("price prediction",
		logger.Float64("wma", wma),
		logger.Float64("momentum", momentum),
		logger.Float64("predicted_price", predicted),
		logger.Int("predicted_bin", predictedBin),
		logger.String("trend", string(trend)))

	return models.PricePrediction{
		PredictedBinID:     predictedBin,
		PredictedPrice:     decimal.NewFromFloat(predicted),
		Confidence:         confidence,
		TimeHorizonMinutes: timeHorizonMinutes,
		Trend:              trend,
	}
}

func (p *PricePredictor) fallback(timeHorizonMinutes int) models.PricePrediction {
	pred := models.PricePrediction{
		PredictedPrice:     decimal.Zero,
		Confidence:         p.cfg.MinConfidence,
		TimeHorizonMinutes: timeHorizonMinutes,
		Trend:              models.TrendNeutral,
	}
	if last, ok := p.history.Last(); ok {
		pred.PredictedBinID = last.BinID
		pred.PredictedPrice = last.Price
	}
	return pred
}

func (p *PricePredictor) observe(op string, start time.Time) {
	if p.metrics != nil {
		p.metrics.RecordAnalysis(op)
		p.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

var _ domsvc.PricePredictor = (*PricePredictor)(nil)
