package repository

import (
	"BinPulse/internal/domain/models"
	domrepo "BinPulse/internal/domain/repository"
	"BinPulse/pkg/logger"
)

// MemoryHistory is the bounded in-memory sample buffer behind the analytics
// services. It keeps at most capacity samples, evicting the oldest first.
// There is no internal locking: the store assumes a single writer, matching
// the engine's synchronous model. Concurrent appenders must serialize
// externally.
type MemoryHistory struct {
	capacity int
	samples  []models.BinSample
	log      *logger.Logger
	metrics  domrepo.Metrics
}

// NewMemoryHistory creates a history bounded to capacity samples.
func NewMemoryHistory(capacity int) *MemoryHistory {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemoryHistory{
		capacity: capacity,
		samples:  make([]models.BinSample, 0, capacity),
	}
}

// SetLogger injects a logger.
func (h *MemoryHistory) SetLogger(l *logger.Logger) { h.log = l }

// SetMetrics injects a metrics recorder.
func (h *MemoryHistory) SetMetrics(m domrepo.Metrics) { h.metrics = m }

// Append validates and stores a sample, evicting the oldest entry when the
// buffer is over capacity.
func (h *MemoryHistory) Append(s models.BinSample) error {
	if err := validateSample(s); err != nil {
		h.log.Warn("rejected sample", logger.Error(err), logger.Int("bin_id", s.BinID))
		if h.metrics != nil {
			h.metrics.RecordValidationError("sample")
		}
		return err
	}

	h.samples = append(h.samples, s)
	if len(h.samples) > h.capacity {
		h.samples = h.samples[len(h.samples)-h.capacity:]
		if h.metrics != nil {
			h.metrics.RecordEviction()
		}
	}
	if h.metrics != nil {
		h.metrics.RecordSampleAppended()
	}
	return nil
}

// Export returns an ordered copy of the buffer for external persistence.
func (h *MemoryHistory) Export() []models.BinSample {
	out := make([]models.BinSample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Import replaces the buffer with the given samples, keeping only the most
// recent capacity entries when the input is larger.
func (h *MemoryHistory) Import(samples []models.BinSample) {
	if len(samples) > h.capacity {
		samples = samples[len(samples)-h.capacity:]
	}
	h.samples = make([]models.BinSample, len(samples))
	copy(h.samples, samples)
	h.log.Debug("history imported", logger.Int("samples", len(h.samples)))
}

// Clear empties the buffer.
func (h *MemoryHistory) Clear() {
	h.samples = h.samples[:0]
}

// Len reports the current number of samples.
func (h *MemoryHistory) Len() int {
	return len(h.samples)
}

// Last returns the most recent sample, if any.
func (h *MemoryHistory) Last() (models.BinSample, bool) {
	if len(h.samples) == 0 {
		return models.BinSample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Prices returns the price series as floats, oldest first.
func (h *MemoryHistory) Prices() []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = s.Price.InexactFloat64()
	}
	return out
}

func validateSample(s models.BinSample) error {
	if s.Price.Sign() <= 0 {
		return &models.InvalidSampleError{Field: "price", Value: s.Price}
	}
	if s.Volume.Sign() < 0 {
		return &models.InvalidSampleError{Field: "volume", Value: s.Volume}
	}
	if s.Liquidity.Sign() < 0 {
		return &models.InvalidSampleError{Field: "liquidity", Value: s.Liquidity}
	}
	return nil
}

var _ domrepo.SampleHistory = (*MemoryHistory)(nil)
