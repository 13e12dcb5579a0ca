package storage

import (
	"context"
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID. Returns ErrNotFound when absent.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactions returns one newest-first page of the transactions matching filter,
	// together with the total number of matches.
	ListTransactions(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)

	// TransactionStats aggregates transactions created within [from, to]; nil bounds are open.
	TransactionStats(ctx context.Context, from, to *time.Time) (*models.TransactionStats, error)
}

// TransactionWriter defines the interface for persisting transactions.
// It is owned by the lifecycle manager; nothing else writes transactions.
type TransactionWriter interface {
	// CreateTransaction inserts a fully populated transaction.
	// Returns ErrConflict if the id or reference already exists.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// UpdateTransaction writes the mutable fields of tx (status, notes, cancellation reason,
	// milestones, updated_at, updated_by, version) if the stored version equals expectedVersion.
	// Returns ErrNotFound if the row is gone and ErrVersionConflict on a version mismatch.
	UpdateTransaction(ctx context.Context, tx *models.Transaction, expectedVersion int64) error
}

// TransactionStore combines the reader and writer interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionWriter
}
