// Package models defines data structures for the portfolio tracker
package models

import "time"

// PricePoint represents a single trading session's price data.
// Series are ordered ascending by date.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Quote holds a live price snapshot for one instrument
type Quote struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_percent"`
	Name      string  `json:"name"`
	Currency  string  `json:"currency"`
}

// History bundles a price series with its instrument metadata
type History struct {
	Ticker   string       `json:"ticker"`
	Name     string       `json:"name"`
	Currency string       `json:"currency"`
	Points   []PricePoint `json:"points"`
}

// Closes extracts the closing price series in chronological order
func (h *History) Closes() []float64 {
	closes := make([]float64, len(h.Points))
	for i, p := range h.Points {
		closes[i] = p.Close
	}
	return closes
}
