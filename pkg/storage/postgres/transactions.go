package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, reference, sender_id, receiver_id, amount_source, amount_converted, fee, fee_source,
	exchange_rate, total_source, status, purpose, notes, cancelled_reason, processed_at, completed_at, cancelled_at,
	created_at, updated_at, created_by, updated_by, version`

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*models.Transaction, error) {
	var tx models.Transaction
	var status string
	err := row.Scan(
		&tx.Id,
		&tx.Reference,
		&tx.SenderId,
		&tx.ReceiverId,
		&tx.AmountSource,
		&tx.AmountConverted,
		&tx.Fee,
		&tx.FeeSource,
		&tx.ExchangeRate,
		&tx.TotalSource,
		&status,
		&tx.Purpose,
		&tx.Notes,
		&tx.CancelledReason,
		&tx.ProcessedAt,
		&tx.CompletedAt,
		&tx.CancelledAt,
		&tx.CreatedAt,
		&tx.UpdatedAt,
		&tx.CreatedBy,
		&tx.UpdatedBy,
		&tx.Version,
	)
	if err != nil {
		return nil, err
	}
	tx.Status = models.TransactionStatus(status)
	return &tx, nil
}

// CreateTransaction inserts a transaction row. The primary key and the reference UNIQUE
// constraint turn collisions into storage.ErrConflict.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`,
		tx.Id, tx.Reference, tx.SenderId, tx.ReceiverId,
		tx.AmountSource, tx.AmountConverted, tx.Fee, tx.FeeSource, tx.ExchangeRate, tx.TotalSource,
		string(tx.Status), tx.Purpose, tx.Notes, tx.CancelledReason,
		tx.ProcessedAt, tx.CompletedAt, tx.CancelledAt,
		tx.CreatedAt, tx.UpdatedAt, tx.CreatedBy, tx.UpdatedBy, tx.Version,
	)
	if err != nil {
		err = classify(err, fmt.Sprintf("transaction %s (reference %s)", tx.Id, tx.Reference))
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return tx, nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *Store) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, txID)
	tx, err := scanTransaction(row)
	if err != nil {
		err = classify(err, fmt.Sprintf("transaction with ID %s", txID))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction writes the mutable columns if the row is still at expectedVersion.
func (s *Store) UpdateTransaction(ctx context.Context, tx *models.Transaction, expectedVersion int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, notes = $2, cancelled_reason = $3, processed_at = $4, completed_at = $5,
			cancelled_at = $6, updated_at = $7, updated_by = $8, version = $9
		WHERE id = $10 AND version = $11
	`,
		string(tx.Status), tx.Notes, tx.CancelledReason, tx.ProcessedAt, tx.CompletedAt,
		tx.CancelledAt, tx.UpdatedAt, tx.UpdatedBy, tx.Version,
		tx.Id, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	// Nothing matched: either the row is gone or another writer bumped the version.
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`, tx.Id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check transaction existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("transaction with ID %s: %w", tx.Id, storage.ErrNotFound)
	}
	return fmt.Errorf("transaction with ID %s at version %d: %w", tx.Id, expectedVersion, storage.ErrVersionConflict)
}

// ListTransactions returns one newest-first page plus the full filtered count.
func (s *Store) ListTransactions(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	where, args := buildWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	query, pageArgs := buildPageQuery(where, args, filter)
	rows, err := s.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		items = append(items, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return &models.TransactionPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// TransactionStats aggregates in SQL and derives rate and average in Go.
func (s *Store) TransactionStats(ctx context.Context, from, to *time.Time) (*models.TransactionStats, error) {
	where, args := buildWhere(models.TransactionFilter{From: from, To: to})

	var total decimal.Decimal
	var count, completed int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_source), 0), COUNT(*), COUNT(*) FILTER (WHERE status = 'completed')
		FROM transactions`+where, args...).Scan(&total, &count, &completed)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	stats := models.NewTransactionStats(total, count, completed)
	return &stats, nil
}

// buildWhere renders the filter as a WHERE clause with positional arguments.
func buildWhere(filter models.TransactionFilter) (string, []any) {
	var clauses []string
	var args []any
	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.SenderId != "" {
		add("sender_id = $%d", filter.SenderId)
	}
	if filter.ReceiverId != "" {
		add("receiver_id = $%d", filter.ReceiverId)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}
	if filter.MinAmount != nil {
		add("amount_source >= $%d", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		add("amount_source <= $%d", *filter.MaxAmount)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func buildPageQuery(where string, args []any, filter models.TransactionFilter) (string, []any) {
	pageArgs := append(append([]any(nil), args...), filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(pageArgs)-1, len(pageArgs))
	return query, pageArgs
}
