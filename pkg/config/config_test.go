package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCarriesReferenceConstants(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 1000, c.History.Capacity)
	assert.Equal(t, 10, c.Predictor.MinSamples)
	assert.Equal(t, 20, c.Predictor.MomentumWindow)
	assert.Equal(t, 15.0, c.Predictor.BaselineMinutes)
	assert.Equal(t, 0.1, c.Predictor.MinConfidence)
	assert.Equal(t, 0.95, c.Predictor.MaxConfidence)
	assert.Equal(t, 0.7, c.Volatility.HistoryWeight)
	assert.Equal(t, 0.3, c.Volatility.RecentWeight)
	assert.Equal(t, 0.05, c.Volatility.SpikeSaturation)
	assert.Equal(t, 50, c.Volatility.BaseSpread)
	assert.Equal(t, 100, c.Volatility.FallbackSpread)
	assert.Equal(t, 70.0, c.Health.HealthyThreshold)
	assert.Equal(t, 40.0, c.Health.WarningThreshold)
	assert.Equal(t, 20.0, c.Advisor.BaseFeeAPR)
	assert.Equal(t, 0.01, c.Advisor.BinPriceStepPct)
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `
environment: test
history:
  capacity: 250
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", c.Environment)
	assert.Equal(t, 250, c.History.Capacity)
	// untouched sections fall back to defaults
	assert.Equal(t, 10, c.Predictor.MinSamples)
	assert.Equal(t, 0.7, c.Volatility.HistoryWeight)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
environment: test
history:
  capacity: -5
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateCrossFieldConstraints(t *testing.T) {
	c := Default()
	c.Health.WarningThreshold = 80
	require.ErrorContains(t, c.Validate(), "warning_threshold")

	c = Default()
	c.Predictor.MaxConfidence = 0.05
	require.ErrorContains(t, c.Validate(), "max_confidence")

	c = Default()
	c.Advisor.CriticalScore = 90
	require.ErrorContains(t, c.Validate(), "critical_score")
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: test
`)
	t.Setenv("BINPULSE_LOG_LEVEL", "debug")
	t.Setenv("BINPULSE_HISTORY_CAPACITY", "42")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 42, c.History.Capacity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
