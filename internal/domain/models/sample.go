package models

import "github.com/shopspring/decimal"

// BinSample is a single observation of the active bin: price, traded volume
// and resident liquidity at a point in time. Samples are immutable once
// appended to a history.
type BinSample struct {
	Timestamp int64           `json:"timestamp"`
	BinID     int             `json:"binId"`
	Price     decimal.Decimal `json:"price"`
	Volume    decimal.Decimal `json:"volume"`
	Liquidity decimal.Decimal `json:"liquidity"`
}

// PositionRange is the inclusive bin interval a liquidity position covers.
// Supplied per analysis call, never cached by the engine.
type PositionRange struct {
	MinBinID int `json:"minBinId"`
	MaxBinID int `json:"maxBinId"`
}

// Width returns the number of bin steps the range spans.
func (r PositionRange) Width() int {
	return r.MaxBinID - r.MinBinID
}

// Contains reports whether binID falls inside the range.
func (r PositionRange) Contains(binID int) bool {
	return binID >= r.MinBinID && binID <= r.MaxBinID
}

// ActiveBinInfo identifies the bin currently holding the market price.
type ActiveBinInfo struct {
	BinID int             `json:"binId"`
	Price decimal.Decimal `json:"price"`
}
