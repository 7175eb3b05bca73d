package service

import "BinPulse/internal/domain/models"

// PricePredictor forecasts the next price and active bin over a horizon.
// Short or empty histories yield a documented fallback, never an error.
type PricePredictor interface {
	Predict(timeHorizonMinutes int) models.PricePrediction
}

// VolatilityForecaster forecasts volatility and the fee-spike probability
// from the sample history.
type VolatilityForecaster interface {
	Forecast() models.VolatilityForecast
}

// PositionHealthScorer grades a position range against the current market
// state. It fails with models.InvalidRangeError on a degenerate range.
type PositionHealthScorer interface {
	Score(r models.PositionRange, active models.ActiveBinInfo) (models.HealthScore, error)
}

// RebalanceAdvisor combines prediction, volatility and health into an
// actionable recommendation.
type RebalanceAdvisor interface {
	Recommend(r models.PositionRange, active models.ActiveBinInfo) (models.RebalanceRecommendation, error)
}
