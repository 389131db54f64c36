package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is one upstream-reported daily data point for a single
// currency pair, still in wire form (both fields are raw strings).
type Observation struct {
	Date string // yyyyMMdd
	Rate string // decimal as string, may be empty when the feed omits the pair
}

// Record is a persisted, timestamped rate value.
type Record struct {
	ID           int64
	CurrencyPair string // e.g. "USD/NTD"
	Rate         decimal.Decimal
	Timestamp    time.Time // always midnight-aligned
}
