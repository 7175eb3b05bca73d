package analytics

import (
	"fmt"
	"math"
	"time"

	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	"BinPulse/internal/services/features"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// PositionHealthScorer grades a position range by how centered the active
// bin sits in it and how likely the price is to stay inside over the
// scoring horizon.
type PositionHealthScorer struct {
	cfg        config.HealthConfig
	predictor  domsvc.PricePredictor
	forecaster domsvc.VolatilityForecaster
	log        *logger.Logger
	metrics    domrepo.Metrics
}

func NewPositionHealthScorer(cfg *config.Config, predictor domsvc.PricePredictor, forecaster domsvc.VolatilityForecaster) *PositionHealthScorer {
	return &PositionHealthScorer{cfg: cfg.Health, predictor: predictor, forecaster: forecaster}
}

// SetLogger injects a logger.
func (s *PositionHealthScorer) SetLogger(l *logger.Logger) { s.log = l }

// SetMetrics injects a metrics recorder.
func (s *PositionHealthScorer) SetMetrics(m domrepo.Metrics) { s.metrics = m }

// Score grades the position. A range whose lower bound is not strictly
// below its upper bound fails with models.InvalidRangeError.
func (s *PositionHealthScorer) Score(r models.PositionRange, active models.ActiveBinInfo) (models.HealthScore, error) {
	start := time.Now()
	defer s.observe("score", start)

	if r.MinBinID >= r.MaxBinID {
		if s.metrics != nil {
			s.metrics.RecordValidationError("range")
		}
		return models.HealthScore{}, &models.InvalidRangeError{MinBinID: r.MinBinID, MaxBinID: r.MaxBinID}
	}

	// 1.0 means the active bin sits exactly mid-range; an active bin outside
	// the range pushes centeredness below zero, which the final clamp absorbs.
	binRange := float64(r.Width())
	centeredness := 1 - math.Abs(0.5-float64(active.BinID-r.MinBinID)/binRange)

	pred := s.predictor.Predict(s.cfg.HorizonMinutes)
	willStay := r.Contains(pred.PredictedBinID)
	staysProb := pred.Confidence
	if !willStay {
		staysProb = 1 - pred.Confidence
	}

	score := centeredness*50 + staysProb*50

	roomAbove := r.MaxBinID - active.BinID
	roomBelow := active.BinID - r.MinBinID
	if (pred.Trend == models.TrendBullish && roomAbove > roomBelow) ||
		(pred.Trend == models.TrendBearish && roomBelow > roomAbove) {
		score += s.cfg.TrendBonus
	}
	score = features.Clamp(score, 0, 100)

	status := models.StatusCritical
	switch {
	case score >= s.cfg.HealthyThreshold:
		status = models.StatusHealthy
	case score >= s.cfg.WarningThreshold:
		status = models.StatusWarning
	}

	vol := s.forecaster.Forecast()
	days := s.runwayDays(status, vol.PredictedVolatilityPct)

	var recs []string
	if score < s.cfg.HealthyThreshold {
		recs = append(recs, "consider rebalancing soon")
	}
	if !willStay {
		recs = append(recs, fmt.Sprintf("price predicted to move %s out of range", pred.Trend))
	}
	if vol.FeeSpikeProbability > s.cfg.SpikeAlertThreshold {
		recs = append(recs, "high volatility expected, fees may spike")
	}
	if centeredness < s.cfg.OffCenterThreshold {
		recs = append(recs, "position is off-center relative to the active bin")
	}

	if s.metrics != nil {
		s.metrics.RecordHealthScore(score)
	}
	s.log.Debug("position health",
		logger.Float64("score", score),
		logger.String("status", string(status)),
		logger.Float64("centeredness", centeredness),
		logger.Float64("stays_active_probability", staysProb),
		logger.Bool("will_stay_in_range", willStay))

	return models.HealthScore{
		Score:                  score,
		Status:                 status,
		StaysActiveProbability: staysProb,
		DaysUntilRebalance:     days,
		Recommendations:        recs,
	}, nil
}

// runwayDays stretches or compresses the rebalance runway with predicted
// volatility; critical positions get a fixed short floor.
func (s *PositionHealthScorer) runwayDays(status models.HealthStatus, predictedVolPct float64) float64 {
	scale := 1 + predictedVolPct/s.cfg.RunwayVolDivisor
	switch status {
	case models.StatusHealthy:
		return s.cfg.HealthyRunwayDays / scale
	case models.StatusWarning:
		return s.cfg.WarningRunwayDays / scale
	default:
		return s.cfg.CriticalRunwayDays
	}
}

func (s *PositionHealthScorer) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordAnalysis(op)
		s.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

var _ domsvc.PositionHealthScorer = (*PositionHealthScorer)(nil)
