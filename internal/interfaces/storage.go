package interfaces

import (
	"context"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// LedgerStore manages the append-only transaction ledger
type LedgerStore interface {
	// AddTransaction persists a new ledger entry, assigning its ID
	AddTransaction(ctx context.Context, tx *models.Transaction) error

	// DeleteTransaction removes a ledger entry by ID
	DeleteTransaction(ctx context.Context, id string) error

	// ListTransactions returns all ledger entries, newest first
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	Close() error
}
