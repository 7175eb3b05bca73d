//go:build wireinject
// +build wireinject

package di

import (
	"BinPulse/pkg/config"
	"BinPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		ProvideHistory,

		// Analytics services
		ProvidePricePredictor,
		ProvideVolatilityForecaster,
		ProvideHealthScorer,
		ProvideRebalanceAdvisor,

		// Use cases
		ProvideAnalysisUseCase,

		// Application
		ProvideApp,
	)
	return &server.App{}, nil
}
