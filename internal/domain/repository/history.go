package repository

import "BinPulse/internal/domain/models"

// SampleHistory is the bounded, append-only time series the analytics
// services read from. One history is owned by exactly one engine instance;
// callers appending from multiple goroutines must serialize externally.
type SampleHistory interface {
	// Append validates the sample and adds it to the buffer, evicting the
	// oldest entry when the buffer is over capacity.
	Append(s models.BinSample) error
	// Export returns an ordered copy of the buffer for external persistence.
	Export() []models.BinSample
	// Import replaces the buffer, keeping only the most recent entries when
	// the input exceeds capacity.
	Import(samples []models.BinSample)
	// Clear empties the buffer.
	Clear()
	// Len reports the current number of samples.
	Len() int
	// Last returns the most recent sample, if any.
	Last() (models.BinSample, bool)
	// Prices returns the price series as floats, oldest first.
	Prices() []float64
}

// Metrics records engine operation telemetry.
type Metrics interface {
	RecordSampleAppended()
	RecordEviction()
	RecordAnalysis(op string)
	RecordHealthScore(score float64)
	RecordValidationError(kind string)
	RecordLatency(op string, seconds float64)
}
