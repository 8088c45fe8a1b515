// Package interfaces defines service contracts for the portfolio tracker
package interfaces

import (
	"context"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// MarketClient provides access to a market-data provider
type MarketClient interface {
	// GetQuote retrieves a live quote for a ticker
	GetQuote(ctx context.Context, ticker string) (*models.Quote, error)

	// GetHistory retrieves a chronological price series for a ticker.
	// Period is one of "1m", "3m", "6m", "1y", "2y", "5y".
	GetHistory(ctx context.Context, ticker string, period string) (*models.History, error)
}
