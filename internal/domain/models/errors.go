package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidRangeError is returned when a caller supplies a position range
// whose lower bound is not strictly below its upper bound.
type InvalidRangeError struct {
	MinBinID int
	MaxBinID int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid position range: minBinId %d must be less than maxBinId %d", e.MinBinID, e.MaxBinID)
}

// InvalidSampleError is returned when a sample with a non-positive price or
// negative volume/liquidity is appended.
type InvalidSampleError struct {
	Field string
	Value decimal.Decimal
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample: %s=%s out of range", e.Field, e.Value.String())
}
