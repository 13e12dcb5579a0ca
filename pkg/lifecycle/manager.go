// Package lifecycle owns every write to a transaction: creation with party eligibility checks
// and fee pricing, status changes through the status state machine, and cancellation.
// Reads are served from the same store so that callers only ever see lifecycle errors.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/remittance-transactions/pkg/fees"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	referencePrefix = "RMT"
	// referenceSuffixLen is the number of hex characters taken from a fresh UUID.
	referenceSuffixLen = 16
	// createAttempts bounds how often Create regenerates the id and reference after a
	// uniqueness conflict in the store.
	createAttempts = 3
)

// CreateInput carries the caller-supplied fields of a new transaction.
type CreateInput struct {
	SenderID     string
	ReceiverID   string
	AmountSource decimal.Decimal
	Purpose      string
	Notes        *string
	Actor        string
}

// StatusInput requests a status change.
type StatusInput struct {
	Status models.TransactionStatus
	Notes  *string
	Actor  string
}

// StatusChange is the outcome of a successful status update.
type StatusChange struct {
	Transaction *models.Transaction
	Previous    models.TransactionStatus
}

// Manager implements the transaction lifecycle operations.
type Manager struct {
	store   storage.TransactionStore
	parties storage.PartyReader
	rates   fees.RateProvider
	calc    *fees.Calculator
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	strict  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator replaces the UUID generator used for transaction ids and reference suffixes.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// WithCalculator sets the fee calculator. The default uses fees.DefaultSchedule.
func WithCalculator(calc *fees.Calculator) Option {
	return func(m *Manager) { m.calc = calc }
}

// WithStrictTransitions toggles enforcement of the status state machine.
// When disabled, any known status may follow any other.
func WithStrictTransitions(strict bool) Option {
	return func(m *Manager) { m.strict = strict }
}

// NewManager creates a Manager. Transitions are enforced unless disabled with WithStrictTransitions.
func NewManager(store storage.TransactionStore, parties storage.PartyReader, rates fees.RateProvider, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		parties: parties,
		rates:   rates,
		calc:    fees.NewCalculator(nil),
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
		strict:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create validates the parties, prices the transfer and persists a new pending transaction.
func (m *Manager) Create(ctx context.Context, in CreateInput) (*models.Transaction, error) {
	if details := validateCreate(in); len(details) > 0 {
		return nil, validation("invalid transaction request", details)
	}

	if _, err := m.activeParty(ctx, models.SENDER, in.SenderID); err != nil {
		return nil, err
	}
	if _, err := m.activeParty(ctx, models.RECEIVER, in.ReceiverID); err != nil {
		return nil, err
	}

	rate, err := m.rates.CurrentRate(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to read exchange rate", "operation", "create", "error", err)
		return nil, internal("exchange rate unavailable", err)
	}
	if err := fees.ValidateRate(rate); err != nil {
		return nil, internal("exchange rate unavailable", err)
	}
	summary := m.calc.Summarize(in.AmountSource, rate)

	now := m.clock()
	tx := &models.Transaction{
		SenderId:        in.SenderID,
		ReceiverId:      in.ReceiverID,
		AmountSource:    summary.AmountSource,
		AmountConverted: summary.AmountConverted,
		Fee:             summary.Fee,
		FeeSource:       summary.FeeSource,
		ExchangeRate:    summary.ExchangeRate,
		TotalSource:     summary.TotalSource,
		Status:          models.PENDING,
		Purpose:         strings.TrimSpace(in.Purpose),
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       in.Actor,
		Version:         1,
	}

	for attempt := 1; ; attempt++ {
		tx.Id = m.newID()
		tx.Reference = m.reference(now)

		created, err := m.store.CreateTransaction(ctx, tx)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			m.logger.ErrorContext(ctx, "failed to persist transaction",
				"operation", "create", "transaction_id", tx.Id, "reference", tx.Reference, "error", err)
			return nil, internal("failed to create transaction", err)
		}
		if attempt == createAttempts {
			return nil, conflict("transaction id or reference already exists", err)
		}
		m.logger.WarnContext(ctx, "transaction id or reference taken, regenerating",
			"operation", "create", "attempt", attempt, "transaction_id", tx.Id, "reference", tx.Reference)
	}
}

// UpdateStatus moves a transaction to in.Status, stamping the milestone on first arrival.
func (m *Manager) UpdateStatus(ctx context.Context, id string, in StatusInput) (*StatusChange, error) {
	if !in.Status.Valid() {
		return nil, validation("invalid status", map[string]string{"status": fmt.Sprintf("unknown status %q", in.Status)})
	}

	tx, err := m.load(ctx, "update_status", id)
	if err != nil {
		return nil, err
	}

	prev := tx.Status
	if err := m.checkTransition(prev, in.Status); err != nil {
		return nil, err
	}
	if in.Notes != nil {
		tx.Notes = in.Notes
	}
	return m.save(ctx, "update_status", tx, prev, in.Status, in.Actor)
}

// Cancel moves a transaction to cancelled and records the reason. A transaction that was
// already cancelled keeps its original reason and cancellation time.
func (m *Manager) Cancel(ctx context.Context, id, reason, actor string) (*StatusChange, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validation("cancellation reason is required", map[string]string{"reason": "must not be empty"})
	}

	tx, err := m.load(ctx, "cancel", id)
	if err != nil {
		return nil, err
	}

	prev := tx.Status
	if err := m.checkTransition(prev, models.CANCELLED); err != nil {
		return nil, err
	}
	if tx.CancelledReason == nil {
		tx.CancelledReason = &reason
	}
	return m.save(ctx, "cancel", tx, prev, models.CANCELLED, actor)
}

// Get returns a transaction by id.
func (m *Manager) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return m.load(ctx, "get", id)
}

// List returns one page of transactions matching filter, newest first.
// A zero Page or Limit selects the defaults.
func (m *Manager) List(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	if filter.Page == 0 {
		filter.Page = DefaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	if details := validateFilter(filter); len(details) > 0 {
		return nil, validation("invalid transaction filter", details)
	}

	page, err := m.store.ListTransactions(ctx, filter)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to list transactions", "operation", "list", "error", err)
		return nil, internal("failed to list transactions", err)
	}
	return page, nil
}

// Stats aggregates transactions created within [from, to]. Nil bounds are open.
func (m *Manager) Stats(ctx context.Context, from, to *time.Time) (*models.TransactionStats, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, validation("invalid date range", map[string]string{"startDate": "must not be after endDate"})
	}

	stats, err := m.store.TransactionStats(ctx, from, to)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to aggregate transactions", "operation", "stats", "error", err)
		return nil, internal("failed to compute transaction stats", err)
	}
	return stats, nil
}

func (m *Manager) save(ctx context.Context, op string, tx *models.Transaction, prev, target models.TransactionStatus, actor string) (*StatusChange, error) {
	now := m.clock()
	expected := tx.Version

	tx.Status = target
	stampMilestone(tx, target, now)
	tx.UpdatedAt = now
	tx.UpdatedBy = &actor
	tx.Version = expected + 1

	if err := m.store.UpdateTransaction(ctx, tx, expected); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, notFound(fmt.Sprintf("transaction %s not found", tx.Id), err)
		case errors.Is(err, storage.ErrVersionConflict):
			return nil, conflict(fmt.Sprintf("transaction %s was modified concurrently", tx.Id), err)
		}
		m.logger.ErrorContext(ctx, "failed to update transaction",
			"operation", op, "transaction_id", tx.Id, "status", target, "error", err)
		return nil, internal("failed to update transaction", err)
	}
	return &StatusChange{Transaction: tx, Previous: prev}, nil
}

func (m *Manager) load(ctx context.Context, op, id string) (*models.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validation("transaction id is required", map[string]string{"id": "must not be empty"})
	}
	tx, err := m.store.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound(fmt.Sprintf("transaction %s not found", id), err)
		}
		m.logger.ErrorContext(ctx, "failed to load transaction", "operation", op, "transaction_id", id, "error", err)
		return nil, internal("failed to load transaction", err)
	}
	return tx, nil
}

func (m *Manager) activeParty(ctx context.Context, kind models.PartyKind, id string) (*models.Party, error) {
	party, err := m.parties.GetParty(ctx, kind, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound(fmt.Sprintf("%s %s not found", kind, id), err)
		}
		m.logger.ErrorContext(ctx, "failed to load party", "operation", "create", "kind", kind, "party_id", id, "error", err)
		return nil, internal(fmt.Sprintf("failed to load %s", kind), err)
	}
	if !party.IsActive() {
		return nil, validation(fmt.Sprintf("%s is not active", kind),
			map[string]string{string(kind) + "Id": fmt.Sprintf("%s status is %s", kind, party.Status)})
	}
	return party, nil
}

func (m *Manager) checkTransition(from, to models.TransactionStatus) error {
	if !m.strict || CanTransition(from, to) {
		return nil
	}
	return validation(fmt.Sprintf("cannot change status from %s to %s", from, to),
		map[string]string{"status": fmt.Sprintf("transition %s -> %s is not allowed", from, to)})
}

// clock returns the current time at the millisecond precision every store keeps.
func (m *Manager) clock() time.Time {
	return m.now().UTC().Truncate(time.Millisecond)
}

// reference builds RMT-YYYYMMDD-XXXXXXXXXXXXXXXX from the creation date and the leading
// hex digits of a fresh UUID.
func (m *Manager) reference(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(m.newID(), "-", ""))
	if len(suffix) > referenceSuffixLen {
		suffix = suffix[:referenceSuffixLen]
	}
	return fmt.Sprintf("%s-%s-%s", referencePrefix, at.Format("20060102"), suffix)
}

func validateCreate(in CreateInput) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(in.SenderID) == "" {
		details["senderId"] = "is required"
	}
	if strings.TrimSpace(in.ReceiverID) == "" {
		details["receiverId"] = "is required"
	}
	if !in.AmountSource.IsPositive() {
		details["amountSource"] = "must be greater than zero"
	} else if !in.AmountSource.Equal(in.AmountSource.Round(2)) {
		details["amountSource"] = "must have at most two decimal places"
	}
	if strings.TrimSpace(in.Purpose) == "" {
		details["purpose"] = "is required"
	}
	return details
}

func validateFilter(f models.TransactionFilter) map[string]string {
	details := map[string]string{}
	if f.Page < 1 {
		details["page"] = "must be at least 1"
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		details["limit"] = fmt.Sprintf("must be between 1 and %d", MaxLimit)
	}
	if f.Status != "" && !f.Status.Valid() {
		details["status"] = fmt.Sprintf("unknown status %q", f.Status)
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		details["startDate"] = "must not be after endDate"
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		details["minAmount"] = "must not be greater than maxAmount"
	}
	return details
}
