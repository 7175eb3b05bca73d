package analytics

import (
	"math"
	"time"

	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	"BinPulse/internal/services/features"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// VolatilityForecaster estimates volatility from percentage returns and
// derives the fee-spike probability and an optimal bin spread from it.
type VolatilityForecaster struct {
	cfg     config.VolatilityConfig
	history domrepo.SampleHistory
	log     *logger.Logger
	metrics domrepo.Metrics
}

func NewVolatilityForecaster(cfg *config.Config, history domrepo.SampleHistory) *VolatilityForecaster {
	return &VolatilityForecaster{cfg: cfg.Volatility, history: history}
}

// SetLogger injects a logger.
func (f *VolatilityForecaster) SetLogger(l *logger.Logger) { f.log = l }

// SetMetrics injects a metrics recorder.
func (f *VolatilityForecaster) SetMetrics(m domrepo.Metrics) { f.metrics = m }

// Forecast blends full-history and recent realized volatility. Histories
// shorter than the cold-start floor yield a zeroed forecast with the
// fallback spread.
func (f *VolatilityForecaster) Forecast() models.VolatilityForecast {
	start := time.Now()
	defer f.observe("forecast", start)

	prices := f.history.Prices()
	if len(prices) < f.cfg.MinSamples {
		return models.VolatilityForecast{OptimalBinSpread: f.cfg.FallbackSpread}
	}

	returns := features.PctReturns(prices)
	current := features.StdDev(returns)
	recent := features.StdDev(features.Tail(returns, f.cfg.RecentWindow))

	predicted := f.cfg.HistoryWeight*current + f.cfg.RecentWeight*recent
	spike := math.Min(1, predicted/f.cfg.SpikeSaturation)
	spread := int(math.Ceil(float64(f.cfg.BaseSpread) * (1 + predicted*f.cfg.SpreadMultiplier)))

	f.log.Debug("volatility forecast",
		logger.Float64("current", current),
		logger.Float64("recent", recent),
		logger.Float64("predicted", predicted),
		logger.Float64("fee_spike_probability", spike),
		logger.Int("optimal_spread", spread))

	// Pct fields are scaled x100 for display; spike stays fractional.
	return models.VolatilityForecast{
		CurrentVolatilityPct:   current * 100,
		PredictedVolatilityPct: predicted * 100,
		FeeSpikeProbability:    spike,
		OptimalBinSpread:       spread,
	}
}

func (f *VolatilityForecaster) observe(op string, start time.Time) {
	if f.metrics != nil {
		f.metrics.RecordAnalysis(op)
		f.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

var _ domsvc.VolatilityForecaster = (*VolatilityForecaster)(nil)
