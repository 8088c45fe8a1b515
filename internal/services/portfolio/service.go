// Package portfolio manages the transaction ledger and derived holdings
package portfolio

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Fazlur4471/portfolio-tracker/internal/analysis"
	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// Compile-time interface check
var _ interfaces.PortfolioService = (*Service)(nil)

// Service implements PortfolioService
type Service struct {
	ledger interfaces.LedgerStore
	market interfaces.MarketClient
	logger *common.Logger
}

// NewService creates a new portfolio service
func NewService(ledger interfaces.LedgerStore, market interfaces.MarketClient, logger *common.Logger) *Service {
	return &Service{
		ledger: ledger,
		market: market,
		logger: logger,
	}
}

// AddTransaction validates and records a buy or sell
func (s *Service) AddTransaction(ctx context.Context, tx *models.Transaction) error {
	if strings.TrimSpace(tx.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if tx.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if tx.AveragePrice <= 0 {
		return fmt.Errorf("average price must be positive")
	}

	if err := s.ledger.AddTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	s.logger.Info().Str("ticker", tx.Ticker).Float64("quantity", tx.Quantity).Bool("is_buy", tx.IsBuy).Msg("Transaction added")
	return nil
}

// DeleteTransaction removes a ledger entry by ID
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("transaction id is required")
	}
	if err := s.ledger.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.logger.Info().Str("id", id).Msg("Transaction deleted")
	return nil
}

// ListTransactions returns the raw ledger, newest first
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Holdings folds the ledger into net open positions. Buys add quantity
// and invested amount, sells subtract both; positions with no remaining
// quantity are dropped.
func (s *Service) Holdings(ctx context.Context) ([]models.Holding, error) {
	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	byTicker := make(map[string]*models.Holding)
	for _, tx := range txs {
		h, ok := byTicker[tx.Ticker]
		if !ok {
			h = &models.Holding{Ticker: tx.Ticker}
			byTicker[tx.Ticker] = h
		}
		amount := tx.Quantity * tx.AveragePrice
		if tx.IsBuy {
			h.Quantity += tx.Quantity
			h.Invested += amount
		} else {
			h.Quantity -= tx.Quantity
			h.Invested -= amount
		}
	}

	holdings := make([]models.Holding, 0, len(byTicker))
	for _, h := range byTicker {
		if h.Quantity <= 0 {
			continue
		}
		holdings = append(holdings, *h)
	}

	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Ticker < holdings[j].Ticker
	})

	return holdings, nil
}

// Snapshot values holdings at live quotes and attaches per-holding
// annualized volatility from one year of history where available.
// Holdings whose price cannot be resolved are skipped with a warning.
func (s *Service) Snapshot(ctx context.Context) ([]models.HoldingSnapshot, error) {
	holdings, err := s.Holdings(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.HoldingSnapshot, 0, len(holdings))
	for _, h := range holdings {
		price, volatility := s.resolvePrice(ctx, h.Ticker)
		if price <= 0 {
			s.logger.Warn().Str("ticker", h.Ticker).Msg("No price available, holding excluded from snapshot")
			continue
		}
		snapshots = append(snapshots, models.HoldingSnapshot{
			Ticker:       h.Ticker,
			CurrentValue: h.Quantity * price,
			Volatility:   volatility,
		})
	}

	return snapshots, nil
}

// Health scores the current portfolio
func (s *Service) Health(ctx context.Context) (*models.HealthReport, error) {
	snapshots, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := analysis.PortfolioHealth(snapshots)
	return &report, nil
}

// resolvePrice returns the best available price for a ticker plus its
// annualized volatility when enough history exists. The live quote wins;
// the last close from history is the fallback.
func (s *Service) resolvePrice(ctx context.Context, ticker string) (float64, *float64) {
	var price float64

	if quote, err := s.market.GetQuote(ctx, ticker); err == nil && quote.Price > 0 {
		price = quote.Price
	} else if err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Quote fetch failed")
	}

	history, err := s.market.GetHistory(ctx, ticker, "1y")
	if err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("History fetch failed")
		return price, nil
	}

	closes := history.Closes()
	if price == 0 && len(closes) > 0 {
		price = closes[len(closes)-1]
	}

	// A zero volatility means the series was too short to measure; leave
	// it unset so the health scorer applies its unknown-holding default
	vol := analysis.Volatility(closes)
	if vol == 0 {
		return price, nil
	}
	return price, &vol
}
