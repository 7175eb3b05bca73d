package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config carries every tuning constant of the analytics engine as a named
// value. None of the numeric constants have a formal derivation; they are
// heuristics calibrated against the reference behavior.
type Config struct {
	Environment string           `yaml:"environment" default:"development" validate:"required"`
	Logging     LoggingConfig    `yaml:"logging"`
	Metrics     MetricsConfig    `yaml:"metrics"`
	History     HistoryConfig    `yaml:"history"`
	Predictor   PredictorConfig  `yaml:"predictor"`
	Volatility  VolatilityConfig `yaml:"volatility"`
	Health      HealthConfig     `yaml:"health"`
	Advisor     AdvisorConfig    `yaml:"advisor"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info" validate:"required"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	Output string `yaml:"output" default:"stderr" validate:"required"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" default:"binpulse"`
}

type HistoryConfig struct {
	// Capacity bounds the sample buffer; the oldest sample is evicted first.
	Capacity int `yaml:"capacity" default:"1000" validate:"gt=0"`
}

type PredictorConfig struct {
	// MinSamples is the cold-start floor below which the predictor falls
	// back to the last known price with minimum confidence.
	MinSamples int `yaml:"min_samples" default:"10" validate:"gt=1"`
	// MomentumWindow is the number of recent samples the momentum signal
	// averages consecutive price deltas over.
	MomentumWindow int `yaml:"momentum_window" default:"20" validate:"gt=1"`
	// BaselineMinutes normalizes the momentum extrapolation horizon.
	BaselineMinutes float64 `yaml:"baseline_minutes" default:"15" validate:"gt=0"`
	// TrendThreshold is the momentum-to-WMA ratio separating bullish and
	// bearish from neutral.
	TrendThreshold float64 `yaml:"trend_threshold" default:"0.001" validate:"gte=0"`
	MinConfidence  float64 `yaml:"min_confidence" default:"0.1" validate:"gte=0,lte=1"`
	MaxConfidence  float64 `yaml:"max_confidence" default:"0.95" validate:"gte=0,lte=1"`
	// BinsPerUnitMove is the linear approximation mapping a relative price
	// move onto a bin delta. It intentionally ignores the pool's exponential
	// bin-step formula to stay behavior-compatible with the reference engine.
	BinsPerUnitMove float64 `yaml:"bins_per_unit_move" default:"100" validate:"gt=0"`
}

type VolatilityConfig struct {
	// MinSamples is the cold-start floor below which the forecast is zeroed.
	MinSamples int `yaml:"min_samples" default:"20" validate:"gt=2"`
	// RecentWindow is the number of trailing returns for the recent blend leg.
	RecentWindow int `yaml:"recent_window" default:"10" validate:"gt=1"`
	// HistoryWeight and RecentWeight blend full-history and recent volatility.
	HistoryWeight float64 `yaml:"history_weight" default:"0.7" validate:"gte=0,lte=1"`
	RecentWeight  float64 `yaml:"recent_weight" default:"0.3" validate:"gte=0,lte=1"`
	// SpikeSaturation is the raw volatility at which the fee-spike
	// probability saturates to 1.
	SpikeSaturation float64 `yaml:"spike_saturation" default:"0.05" validate:"gt=0"`
	// BaseSpread is the bin spread suggested at zero volatility;
	// FallbackSpread is returned on cold start.
	BaseSpread       int     `yaml:"base_spread" default:"50" validate:"gt=0"`
	FallbackSpread   int     `yaml:"fallback_spread" default:"100" validate:"gte=0"`
	SpreadMultiplier float64 `yaml:"spread_multiplier" default:"10" validate:"gte=0"`
}

type HealthConfig struct {
	// HorizonMinutes is the prediction horizon used for the stay-in-range check.
	HorizonMinutes   int     `yaml:"horizon_minutes" default:"60" validate:"gt=0"`
	HealthyThreshold float64 `yaml:"healthy_threshold" default:"70" validate:"gt=0,lte=100"`
	WarningThreshold float64 `yaml:"warning_threshold" default:"40" validate:"gt=0,lte=100"`
	// TrendBonus is added when the trend points at the side of the range
	// with the most remaining headroom.
	TrendBonus float64 `yaml:"trend_bonus" default:"10" validate:"gte=0"`
	// Runway baselines in days, scaled down by predicted volatility.
	HealthyRunwayDays  float64 `yaml:"healthy_runway_days" default:"7" validate:"gt=0"`
	WarningRunwayDays  float64 `yaml:"warning_runway_days" default:"3" validate:"gt=0"`
	CriticalRunwayDays float64 `yaml:"critical_runway_days" default:"0.1" validate:"gt=0"`
	// RunwayVolDivisor scales the runway: days / (1 + volPct/divisor).
	RunwayVolDivisor float64 `yaml:"runway_vol_divisor" default:"10" validate:"gt=0"`
	// SpikeAlertThreshold triggers the fee-spike recommendation.
	SpikeAlertThreshold float64 `yaml:"spike_alert_threshold" default:"0.7" validate:"gte=0,lte=1"`
	// OffCenterThreshold triggers the off-center recommendation.
	OffCenterThreshold float64 `yaml:"off_center_threshold" default:"0.5" validate:"gte=0,lte=1"`
}

type AdvisorConfig struct {
	HorizonMinutes int `yaml:"horizon_minutes" default:"60" validate:"gt=0"`
	// RebalanceThreshold is the health score below which a rebalance is
	// recommended; CriticalScore bumps urgency to high.
	RebalanceThreshold   float64 `yaml:"rebalance_threshold" default:"60" validate:"gt=0,lte=100"`
	CriticalScore        float64 `yaml:"critical_score" default:"30" validate:"gte=0,lte=100"`
	StayProbabilityFloor float64 `yaml:"stay_probability_floor" default:"0.5" validate:"gte=0,lte=1"`
	// BaseFeeAPR is the zero-volatility APR baseline in percent.
	BaseFeeAPR    float64 `yaml:"base_fee_apr" default:"20" validate:"gt=0"`
	APRVolDivisor float64 `yaml:"apr_vol_divisor" default:"10" validate:"gt=0"`
	// BinPriceStepPct approximates the per-bin price step when compounding
	// the suggested min/max prices out from the predicted price.
	BinPriceStepPct float64 `yaml:"bin_price_step_pct" default:"0.01" validate:"gt=0,lt=1"`
}

var validate = validator.New()

// Default returns a config populated with the reference tuning constants.
func Default() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		// struct tags are static; a failure here is a programming error
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	c.Metrics.Enabled = true
	return c
}

// Load reads and parses a YAML configuration file, filling unset fields
// with defaults and validating the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("BINPULSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BINPULSE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("BINPULSE_HISTORY_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BINPULSE_HISTORY_CAPACITY: %w", err)
		}
		c.History.Capacity = n
	}
	if v := os.Getenv("BINPULSE_METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("BINPULSE_METRICS_ENABLED: %w", err)
		}
		c.Metrics.Enabled = b
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks struct tags plus the cross-field constraints the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Predictor.MaxConfidence <= c.Predictor.MinConfidence {
		return fmt.Errorf("predictor.max_confidence must exceed min_confidence")
	}
	if c.Health.WarningThreshold >= c.Health.HealthyThreshold {
		return fmt.Errorf("health.warning_threshold must be below healthy_threshold")
	}
	if c.Advisor.CriticalScore >= c.Advisor.RebalanceThreshold {
		return fmt.Errorf("advisor.critical_score must be below rebalance_threshold")
	}
	return nil
}
