package di

import (
	domrepo "BinPulse/internal/domain/repository"
	domsvc "BinPulse/internal/domain/service"
	internalrepo "BinPulse/internal/repository"
	"BinPulse/internal/services/analytics"
	"BinPulse/internal/usecase"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
	"BinPulse/pkg/metrics"
	"BinPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder, or nil when
// metrics are disabled.
func ProvideMetrics(cfg *config.Config) domrepo.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(cfg.Metrics.Namespace)
}

// ProvideHistory creates the bounded in-memory sample history.
func ProvideHistory(cfg *config.Config, l *logger.Logger, m domrepo.Metrics) domrepo.SampleHistory {
	h := internalrepo.NewMemoryHistory(cfg.History.Capacity)
	h.SetLogger(l)
	h.SetMetrics(m)
	return h
}

// ProvidePricePredictor creates the price predictor service.
func ProvidePricePredictor(cfg *config.Config, history domrepo.SampleHistory, l *logger.Logger, m domrepo.Metrics) domsvc.PricePredictor {
	p := analytics.NewPricePredictor(cfg, history)
	p.SetLogger(l)
	p.SetMetrics(m)
	return p
}

// ProvideVolatilityForecaster creates the volatility forecaster service.
func ProvideVolatilityForecaster(cfg *config.Config, history domrepo.SampleHistory, l *logger.Logger, m domrepo.Metrics) domsvc.VolatilityForecaster {
	f := analytics.NewVolatilityForecaster(cfg, history)
	f.SetLogger(l)
	f.SetMetrics(m)
	return f
}

// ProvideHealthScorer creates the position health scorer.
func ProvideHealthScorer(cfg *config.Config, predictor domsvc.PricePredictor, forecaster domsvc.VolatilityForecaster, l *logger.Logger, m domrepo.Metrics) domsvc.PositionHealthScorer {
	s := analytics.NewPositionHealthScorer(cfg, predictor, forecaster)
	s.SetLogger(l)
	s.SetMetrics(m)
	return s
}

// ProvideRebalanceAdvisor creates the rebalance advisor.
func ProvideRebalanceAdvisor(cfg *config.Config, scorer domsvc.PositionHealthScorer, forecaster domsvc.VolatilityForecaster, predictor domsvc.PricePredictor, l *logger.Logger, m domrepo.Metrics) domsvc.RebalanceAdvisor {
	a := analytics.NewRebalanceAdvisor(cfg, scorer, forecaster, predictor)
	a.SetLogger(l)
	a.SetMetrics(m)
	return a
}

// ProvideAnalysisUseCase creates the analysis facade.
func ProvideAnalysisUseCase(cfg *config.Config, history domrepo.SampleHistory, predictor domsvc.PricePredictor, forecaster domsvc.VolatilityForecaster, scorer domsvc.PositionHealthScorer, advisor domsvc.RebalanceAdvisor, l *logger.Logger) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(cfg, history, predictor, forecaster, scorer, advisor, l)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, analysis *usecase.AnalysisUseCase, l *logger.Logger) *server.App {
	return server.New(cfg, analysis, l)
}
