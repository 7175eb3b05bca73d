package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"BinPulse/internal/domain/models"
	internalrepo "BinPulse/internal/repository"
	"BinPulse/pkg/config"
)

func newHistory(t *testing.T, samples ...models.BinSample) *internalrepo.MemoryHistory {
	t.Helper()
	h := internalrepo.NewMemoryHistory(1000)
	for _, s := range samples {
		require.NoError(t, h.Append(s))
	}
	return h
}

func binSample(ts int64, binID int, price float64) models.BinSample {
	return models.BinSample{
		Timestamp: ts,
		BinID:     binID,
		Price:     decimal.NewFromFloat(price),
		Volume:    decimal.NewFromInt(10),
		Liquidity: decimal.NewFromInt(1000),
	}
}

// flatSamples builds n samples at a constant price in a fixed bin.
func flatSamples(n, binID int, price float64) []models.BinSample {
	out := make([]models.BinSample, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, binSample(int64(i), binID, price))
	}
	return out
}

// risingSamples builds n samples with price start, start+step, ... and bin
// ids 0..n-1.
func risingSamples(n int, start, step float64) []models.BinSample {
	out := make([]models.BinSample, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, binSample(int64(i), i, start+float64(i)*step))
	}
	return out
}

func testConfig() *config.Config {
	return config.Default()
}
