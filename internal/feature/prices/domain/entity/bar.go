// Package entity defines the domain models for the prices feature.
package entity

import "time"

// PriceBar represents one OHLCV (Open, High, Low, Close, Volume) record
// for a stock symbol at a specific point in time. Bars are fetched fresh
// from the upstream provider on every request and never persisted.
type PriceBar struct {
	Time   time.Time // Timestamp of this bar
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume int64     // Trading volume
}
