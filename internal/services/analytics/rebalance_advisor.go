package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// RebalanceAdvisor is the top-level orchestrator: it combines position
// health, the volatility forecast and the price prediction into one
// actionable recommendation.
type RebalanceAdvisor struct {
	cfg        config.AdvisorConfig
	scorer     domsvc.PositionHealthScorer
	forecaster domsvc.VolatilityForecaster
	predictor  domsvc.PricePredictor
	log        *logger.Logger
	metrics    domrepo.Metrics
}

func NewRebalanceAdvisor(cfg *config.Config, scorer domsvc.PositionHealthScorer, forecaster domsvc.VolatilityForecaster, predictor domsvc.PricePredictor) *RebalanceAdvisor {
	return &RebalanceAdvisor{cfg: cfg.Advisor, scorer: scorer, forecaster: forecaster, predictor: predictor}
}

// SetLogger injects a logger.
func (a *RebalanceAdvisor) SetLogger(l *logger.Logger) { a.log = l }

// SetMetrics injects a metrics recorder.
func (a *RebalanceAdvisor) SetMetrics(m domrepo.Metrics) { a.metrics = m }

// Recommend produces the rebalance recommendation for a position. Each call
// is a pure function of the current history and the supplied inputs.
func (a *RebalanceAdvisor) Recommend(r models.PositionRange, active models.ActiveBinInfo) (models.RebalanceRecommendation, error) {
	start := time.Now()
	defer a.observe("recommend", start)

	health, err := a.scorer.Score(r, active)
	if err != nil {
		return models.RebalanceRecommendation{}, fmt.Errorf("score position: %w", err)
	}
	vol := a.forecaster.Forecast()
	pred := a.predictor.Predict(a.cfg.HorizonMinutes)

	should := health.Score < a.cfg.RebalanceThreshold ||
		health.StaysActiveProbability < a.cfg.StayProbabilityFloor

	urgency := models.UrgencyLow
	switch {
	case health.Score < a.cfg.CriticalScore || health.StaysActiveProbability == 0:
		urgency = models.UrgencyHigh
	case health.Score < a.cfg.RebalanceThreshold:
		urgency = models.UrgencyMedium
	}

	suggested := a.suggestRange(pred, vol.OptimalBinSpread)
	apr := a.cfg.BaseFeeAPR * (1 + vol.PredictedVolatilityPct/a.cfg.APRVolDivisor)

	var reasoning []string
	if should {
		reasoning = append(reasoning,
			fmt.Sprintf("position health score is %.0f/100", health.Score),
			fmt.Sprintf("price trend is %s with %.0f%% confidence", pred.Trend, pred.Confidence*100),
			fmt.Sprintf("suggested bin spread of %d based on predicted volatility", vol.OptimalBinSpread),
			fmt.Sprintf("expected fee APR around %.1f%% in the suggested range", apr),
		)
	} else {
		reasoning = append(reasoning,
			fmt.Sprintf("position is well positioned with a health score of %.0f/100", health.Score))
	}

	a.log.Debug("rebalance recommendation",
		logger.Bool("should_rebalance", should),
		logger.String("urgency", string(urgency)),
		logger.Int("suggested_min_bin", suggested.MinBinID),
		logger.Int("suggested_max_bin", suggested.MaxBinID),
		logger.Float64("expected_fee_apr", apr))

	return models.RebalanceRecommendation{
		ShouldRebalance: should,
		Urgency:         urgency,
		SuggestedRange:  suggested,
		ExpectedFeeAPR:  apr,
		Reasoning:       reasoning,
	}, nil
}

// suggestRange centers the volatility-derived spread on the predicted bin.
// Price bounds compound a fixed per-bin step out from the predicted price,
// an approximation of the pool's exponential bin-step pricing.
func (a *RebalanceAdvisor) suggestRange(pred models.PricePrediction, spread int) models.SuggestedRange {
	half := float64(spread) / 2
	price := pred.PredictedPrice.InexactFloat64()
	return models.SuggestedRange{
		MinBinID: pred.PredictedBinID - spread/2,
		MaxBinID: pred.PredictedBinID + (spread+1)/2,
		MinPrice: decimal.NewFromFloat(price * math.Pow(1-a.cfg.BinPriceStepPct, half)),
		MaxPrice: decimal.NewFromFloat(price * math.Pow(1+a.cfg.BinPriceStepPct, half)),
	}
}

func (a *RebalanceAdvisor) observe(op string, start time.Time) {
	if a.metrics != nil {
		a.metrics.RecordAnalysis(op)
		a.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

var _ domsvc.RebalanceAdvisor = (*RebalanceAdvisor)(nil)
