package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend classifies the short-horizon price direction.
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

// HealthStatus buckets a position health score.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusWarning  HealthStatus = "warning"
	StatusCritical HealthStatus = "critical"
)

// Urgency grades how quickly a rebalance should happen.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// PricePrediction is a short-horizon forecast of price and active bin.
type PricePrediction struct {
	PredictedBinID     int             `json:"predictedBinId"`
	PredictedPrice     decimal.Decimal `json:"predictedPrice"`
	Confidence         float64         `json:"confidence"`
	TimeHorizonMinutes int             `json:"timeHorizonMinutes"`
	Trend              Trend           `json:"trend"`
}

// VolatilityForecast carries realized and predicted volatility plus the
// fee-spike heuristic and the bin spread suited to that volatility.
// Percentage fields are scaled x100 for display.
type VolatilityForecast struct {
	CurrentVolatilityPct   float64 `json:"currentVolatilityPct"`
	PredictedVolatilityPct float64 `json:"predictedVolatilityPct"`
	FeeSpikeProbability    float64 `json:"feeSpikeProbability"`
	OptimalBinSpread       int     `json:"optimalBinSpread"`
}

// HealthScore grades a position range against the current market state.
type HealthScore struct {
	Score                  float64      `json:"score"`
	Status                 HealthStatus `json:"status"`
	StaysActiveProbability float64      `json:"staysActiveProbability"`
	DaysUntilRebalance     float64      `json:"daysUntilRebalance"`
	Recommendations        []string     `json:"recommendations"`
}

// SuggestedRange is the advisor's proposed replacement range.
type SuggestedRange struct {
	MinBinID int             `json:"minBinId"`
	MaxBinID int             `json:"maxBinId"`
	MinPrice decimal.Decimal `json:"minPrice"`
	MaxPrice decimal.Decimal `json:"maxPrice"`
}

// RebalanceRecommendation is the top-level actionable output.
type RebalanceRecommendation struct {
	ShouldRebalance bool           `json:"shouldRebalance"`
	Urgency         Urgency        `json:"urgency"`
	SuggestedRange  SuggestedRange `json:"suggestedRange"`
	ExpectedFeeAPR  float64        `json:"expectedFeeApr"`
	Reasoning       []string       `json:"reasoning"`
}

// AnalysisSnapshot is a consolidated view of all engine outputs for one
// position, computed from the same history state in a single pass.
type AnalysisSnapshot struct {
	Timestamp      time.Time               `json:"timestamp"`
	Prediction     PricePrediction         `json:"prediction"`
	Volatility     VolatilityForecast      `json:"volatility"`
	Health         HealthScore             `json:"health"`
	Recommendation RebalanceRecommendation `json:"recommendation"`
}
