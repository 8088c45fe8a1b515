package badger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// LedgerStorage persists buy/sell transactions in BadgerHold.
type LedgerStorage struct {
	store *Store
}

// NewLedgerStorage creates a LedgerStorage backed by the given store.
func NewLedgerStorage(store *Store) *LedgerStorage {
	return &LedgerStorage{store: store}
}

// AddTransaction persists a new ledger entry. The ID is assigned here,
// the ticker is upper-cased and CreatedAt is stamped when unset.
func (s *LedgerStorage) AddTransaction(_ context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.Ticker = strings.ToUpper(tx.Ticker)
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	if err := s.store.db.Insert(tx.ID, tx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	s.store.logger.Debug().Str("id", tx.ID).Str("ticker", tx.Ticker).Msg("Transaction recorded")
	return nil
}

// DeleteTransaction removes a ledger entry by ID.
func (s *LedgerStorage) DeleteTransaction(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Transaction{})
	if err == badgerhold.ErrNotFound {
		return fmt.Errorf("transaction '%s' not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete transaction '%s': %w", id, err)
	}

	s.store.logger.Debug().Str("id", id).Msg("Transaction deleted")
	return nil
}

// ListTransactions returns all ledger entries, newest first.
func (s *LedgerStorage) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.store.db.Find(&txs, nil); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	return txs, nil
}

// Close closes the underlying store.
func (s *LedgerStorage) Close() error {
	return s.store.Close()
}

// Ensure LedgerStorage implements LedgerStore
var _ interfaces.LedgerStore = (*LedgerStorage)(nil)
