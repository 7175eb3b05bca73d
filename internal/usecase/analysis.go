package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// AnalysisUseCase is the facade external collaborators consume: sample
// ingestion, the export/import persistence contract, and consolidated
// analysis snapshots. Everything is synchronous; each snapshot is a pure
// read of the current history.
type AnalysisUseCase struct {
	history    domrepo.SampleHistory
	predictor  domsvc.PricePredictor
	forecaster domsvc.VolatilityForecaster
	scorer     domsvc.PositionHealthScorer
	advisor    domsvc.RebalanceAdvisor
	horizon    int
	log        *logger.Logger
}

func NewAnalysisUseCase(
	cfg *config.Config,
	history domrepo.SampleHistory,
	predictor domsvc.PricePredictor,
	forecaster domsvc.VolatilityForecaster,
	scorer domsvc.PositionHealthScorer,
	advisor domsvc.RebalanceAdvisor,
	log *logger.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		history:    history,
		predictor:  predictor,
		forecaster: forecaster,
		scorer:     scorer,
		advisor:    advisor,
		horizon:    cfg.Advisor.HorizonMinutes,
		log:        log,
	}
}

// AppendSample ingests one telemetry observation. Callers must append in
// time order; the engine does not reorder.
func (uc *AnalysisUseCase) AppendSample(timestamp int64, binID int, price, volume, liquidity decimal.Decimal) error {
	return uc.history.Append(models.BinSample{
		Timestamp: timestamp,
		BinID:     binID,
		Price:     price,
		Volume:    volume,
		Liquidity: liquidity,
	})
}

// ExportHistory returns the ordered sample list for external persistence.
func (uc *AnalysisUseCase) ExportHistory() []models.BinSample {
	return uc.history.Export()
}

// ImportHistory rehydrates the engine from a previously exported list.
func (uc *AnalysisUseCase) ImportHistory(samples []models.BinSample) {
	uc.history.Import(samples)
}

// ClearHistory empties the sample buffer.
func (uc *AnalysisUseCase) ClearHistory() {
	uc.history.Clear()
}

// Predict exposes the price predictor.
func (uc *AnalysisUseCase) Predict(timeHorizonMinutes int) models.PricePrediction {
	return uc.predictor.Predict(timeHorizonMinutes)
}

// Forecast exposes the volatility forecaster.
func (uc *AnalysisUseCase) Forecast() models.VolatilityForecast {
	return uc.forecaster.Forecast()
}

// Score exposes the position health scorer.
func (uc *AnalysisUseCase) Score(r models.PositionRange, active models.ActiveBinInfo) (models.HealthScore, error) {
	return uc.scorer.Score(r, active)
}

// Snapshot computes all engine outputs for one position in a single pass
// over the same history state.
func (uc *AnalysisUseCase) Snapshot(r models.PositionRange, active models.ActiveBinInfo) (*models.AnalysisSnapshot, error) {
	health, err := uc.scorer.Score(r, active)
	if err != nil {
		return nil, fmt.Errorf("score position: %w", err)
	}
	rec, err := uc.advisor.Recommend(r, active)
	if err != nil {
		return nil, fmt.Errorf("recommend rebalance: %w", err)
	}

	snap := &models.AnalysisSnapshot{
		Timestamp:      time.Now(),
		Prediction:     uc.predictor.Predict(uc.horizon),
		Volatility:     uc.forecaster.Forecast(),
		Health:         health,
		Recommendation: rec,
	}
	uc.log.Info("analysis snapshot",
		logger.Int("samples", uc.history.Len()),
		logger.Float64("health_score", snap.Health.Score),
		logger.Bool("should_rebalance", snap.Recommendation.ShouldRebalance))
	return snap, nil
}
