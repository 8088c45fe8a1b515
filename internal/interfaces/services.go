package interfaces

import (
	"context"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// PortfolioService manages the transaction ledger and derived holdings
type PortfolioService interface {
	// AddTransaction validates and records a buy or sell
	AddTransaction(ctx context.Context, tx *models.Transaction) error

	// DeleteTransaction removes a ledger entry by ID
	DeleteTransaction(ctx context.Context, id string) error

	// ListTransactions returns the raw ledger, newest first
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// Holdings folds the ledger into net open positions
	Holdings(ctx context.Context) ([]models.Holding, error)

	// Snapshot values holdings at live quotes with per-holding volatility
	Snapshot(ctx context.Context) ([]models.HoldingSnapshot, error)

	// Health scores the current portfolio
	Health(ctx context.Context) (*models.HealthReport, error)
}

// AdvisorService derives signals and projections for holdings
type AdvisorService interface {
	// Analyze computes the full technical picture for one position
	Analyze(ctx context.Context, ticker string, quantity, invested float64) (*models.StockAnalysis, error)

	// Review analyzes every open position and scores the portfolio
	Review(ctx context.Context) (*models.AdvisorReview, error)
}

// PlannerService exposes the financial planning calculators
type PlannerService interface {
	// SIP projects recurring monthly investment growth
	SIP(monthly, annualRatePct, years float64) models.SIPResult

	// FD computes fixed-deposit maturity under quarterly compounding
	FD(principal, annualRatePct, years float64) models.FDResult

	// Allocation returns the asset split for a risk profile
	Allocation(profile models.RiskProfile) (models.AllocationProfile, bool)

	// SIPChart renders the SIP growth series as a PNG
	SIPChart(monthly, annualRatePct, years float64) ([]byte, error)
}
