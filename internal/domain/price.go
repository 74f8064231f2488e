package domain

import "time"

// PricePoint is one OHLCV observation for a symbol on a date. There is at
// most one per (symbol, date) pair.
type PricePoint struct {
	Symbol string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
