package models

import "time"

// Transaction is a single buy or sell entry in the append-only ledger
type Transaction struct {
	ID           string    `json:"id" badgerhold:"key"`
	Ticker       string    `json:"ticker"`
	Quantity     float64   `json:"quantity"`
	AveragePrice float64   `json:"average_price"`
	IsBuy        bool      `json:"is_buy"`
	CreatedAt    time.Time `json:"created_at"`
}

// Holding is the net position for one ticker derived from the ledger
type Holding struct {
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	Invested float64 `json:"invested"`
}

// HoldingSnapshot is the health scorer's view of one holding.
// Volatility is annualized percent; nil means unknown.
type HoldingSnapshot struct {
	Ticker       string   `json:"ticker"`
	CurrentValue float64  `json:"current_value"`
	Volatility   *float64 `json:"volatility,omitempty"`
}
