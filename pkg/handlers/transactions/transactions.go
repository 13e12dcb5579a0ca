package transactions

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/handlers/respond"
	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/mapping"
	"github.com/chris/remittance-transactions/pkg/middleware"
	"github.com/chris/remittance-transactions/pkg/models"
)

// LifecycleService is the subset of the lifecycle manager the HTTP layer drives.
type LifecycleService interface {
	Create(ctx context.Context, in lifecycle.CreateInput) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id string, in lifecycle.StatusInput) (*lifecycle.StatusChange, error)
	Cancel(ctx context.Context, id, reason, actor string) (*lifecycle.StatusChange, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)
	Stats(ctx context.Context, from, to *time.Time) (*models.TransactionStats, error)
}

// EventEmitter hands lifecycle events to the bus without blocking the request.
type EventEmitter interface {
	Emit(ctx context.Context, evt events.Event)
}

// Make sure the production types conform
var (
	_ LifecycleService = (*lifecycle.Manager)(nil)
	_ EventEmitter     = (*events.Emitter)(nil)
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Lifecycle LifecycleService
	Events    EventEmitter
	Logger    *slog.Logger
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(lc LifecycleService, emitter EventEmitter, logger *slog.Logger) *TransactionsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionsHandler{Lifecycle: lc, Events: emitter, Logger: logger}
}

// CreateTransaction prices and records a new pending transaction.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		respond.BadRequest(w, err)
		return
	}

	in := mapping.ToDomainCreateInput(&newTx, middleware.ActorFromContext(r.Context()))
	created, err := h.Lifecycle.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	h.emit(r.Context(), created.Id, func() (events.Event, error) { return events.TransactionCreated(created) })
	respond.JSON(w, http.StatusCreated, "transaction created", mapping.ToApiTransaction(created))
}

// ListTransactions returns one filtered page, newest first.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, params api.ListTransactionsParams) {
	filter, details := mapping.ToDomainTransactionFilter(params)
	if len(details) > 0 {
		respond.Fail(w, http.StatusBadRequest, "invalid transaction filter", details)
		return
	}

	page, err := h.Lifecycle.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, "transactions retrieved", mapping.ToApiTransactionPage(page))
}

// GetTransactionStats aggregates transactions created within the requested dates.
func (h *TransactionsHandler) GetTransactionStats(w http.ResponseWriter, r *http.Request, params api.GetTransactionStatsParams) {
	from, to := mapping.DateRange(params.StartDate, params.EndDate)

	stats, err := h.Lifecycle.Stats(r.Context(), from, to)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, "transaction stats retrieved", mapping.ToApiTransactionStats(stats))
}

// GetTransactionById handles the logic for retrieving a transaction by its ID.
func (h *TransactionsHandler) GetTransactionById(w http.ResponseWriter, r *http.Request, id string) {
	tx, err := h.Lifecycle.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, "transaction retrieved", mapping.ToApiTransaction(tx))
}

// UpdateTransactionStatus moves a transaction through the status state machine.
// Moving to cancelled through this endpoint is reported as a cancellation.
func (h *TransactionsHandler) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respond.BadRequest(w, err)
		return
	}

	change, err := h.Lifecycle.UpdateStatus(r.Context(), id, lifecycle.StatusInput{
		Status: models.TransactionStatus(update.Status),
		Notes:  update.Notes,
		Actor:  middleware.ActorFromContext(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	tx := change.Transaction
	if tx.Status == models.CANCELLED {
		h.emit(r.Context(), tx.Id, func() (events.Event, error) { return events.TransactionCancelled(tx, change.Previous) })
	} else {
		h.emit(r.Context(), tx.Id, func() (events.Event, error) { return events.TransactionUpdated(tx, change.Previous) })
	}
	respond.JSON(w, http.StatusOK, "transaction status updated", mapping.ToApiTransaction(tx))
}

// CancelTransaction cancels a pending or processing transaction.
func (h *TransactionsHandler) CancelTransaction(w http.ResponseWriter, r *http.Request, id string) {
	var req api.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	change, err := h.Lifecycle.Cancel(r.Context(), id, req.Reason, middleware.ActorFromContext(r.Context()))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	tx := change.Transaction
	h.emit(r.Context(), tx.Id, func() (events.Event, error) { return events.TransactionCancelled(tx, change.Previous) })
	respond.JSON(w, http.StatusOK, "transaction cancelled", mapping.ToApiTransaction(tx))
}

// emit builds and emits an event. The write has already succeeded, so a build failure is only logged.
func (h *TransactionsHandler) emit(ctx context.Context, txID string, build func() (events.Event, error)) {
	if h.Events == nil {
		return
	}
	evt, err := build()
	if err != nil {
		h.Logger.ErrorContext(ctx, "failed to build event", "transaction_id", txID, "error", err)
		return
	}
	h.Events.Emit(ctx, evt)
}
