package transactions

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/handlers/transactions/mocks"
	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/middleware"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func newRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithActor(req.Context(), "ops-1"))
}

func newHandler(t *testing.T) (*TransactionsHandler, *mocks.LifecycleService, *mocks.EventEmitter) {
	lc := mocks.NewLifecycleService(t)
	emitter := mocks.NewEventEmitter(t)
	return NewTransactionsHandler(lc, emitter, slog.New(slog.NewTextHandler(io.Discard, nil))), lc, emitter
}

func sampleTransaction(status models.TransactionStatus) *models.Transaction {
	created := time.Date(2026, 3, 15, 10, 20, 30, 0, time.UTC)
	return &models.Transaction{
		Id:              "tx-1",
		Reference:       "RMT-20260315-3F2A9C1E",
		SenderId:        "s-1",
		ReceiverId:      "r-1",
		AmountSource:    decimal.RequireFromString("100.00"),
		AmountConverted: decimal.RequireFromString("730000.00"),
		Fee:             decimal.NewFromInt(3000),
		FeeSource:       decimal.RequireFromString("0.41"),
		ExchangeRate:    decimal.NewFromInt(7300),
		TotalSource:     decimal.RequireFromString("100.41"),
		Status:          status,
		Purpose:         "family support",
		CreatedAt:       created,
		UpdatedAt:       created,
		CreatedBy:       "ops-1",
		Version:         1,
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		h, lc, emitter := newHandler(t)
		created := sampleTransaction(models.PENDING)

		lc.On("Create", mock.Anything, mock.MatchedBy(func(in lifecycle.CreateInput) bool {
			return in.SenderID == "s-1" && in.ReceiverID == "r-1" && in.Actor == "ops-1" &&
				in.AmountSource.Equal(decimal.NewFromInt(100))
		})).Return(created, nil)
		emitter.On("Emit", mock.Anything, mock.MatchedBy(func(evt events.Event) bool {
			return evt.Type == events.TypeTransactionCreated && evt.TransactionID == "tx-1"
		})).Return()

		req := newRequest(http.MethodPost, "/transactions", `{"senderId":"s-1","receiverId":"r-1","amountSource":100,"purpose":"family support"}`)
		rr := httptest.NewRecorder()

		// Act
		h.CreateTransaction(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decode(t, rr)
		assert.True(t, env.Success)

		var tx api.Transaction
		require.NoError(t, json.Unmarshal(env.Data, &tx))
		assert.Equal(t, "RMT-20260315-3F2A9C1E", tx.Reference)
		assert.Equal(t, api.TransactionStatusPending, tx.Status)
		assert.True(t, tx.TotalSource.Equal(decimal.RequireFromString("100.41")))
	})

	t.Run("Invalid body", func(t *testing.T) {
		h, _, _ := newHandler(t)
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, newRequest(http.MethodPost, "/transactions", `{"senderId":`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, decode(t, rr).Success)
	})

	t.Run("Validation error", func(t *testing.T) {
		h, lc, emitter := newHandler(t)
		lc.On("Create", mock.Anything, mock.Anything).Return(nil, &lifecycle.Error{
			Kind:    lifecycle.KindValidation,
			Message: "invalid transaction",
			Details: map[string]string{"amountSource": "must be greater than zero"},
		})
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, newRequest(http.MethodPost, "/transactions", `{"senderId":"s-1","receiverId":"r-1","amountSource":0,"purpose":"x"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "must be greater than zero", decode(t, rr).Errors["amountSource"])
		emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, lc, _ := newHandler(t)
		status := api.TransactionStatusPending
		page := &models.TransactionPage{
			Items: []models.Transaction{*sampleTransaction(models.PENDING)},
			Total: 1,
			Page:  1,
			Limit: 10,
		}
		lc.On("List", mock.Anything, mock.MatchedBy(func(f models.TransactionFilter) bool {
			return f.Status == models.PENDING && f.MinAmount != nil && f.MinAmount.Equal(decimal.NewFromInt(50))
		})).Return(page, nil)
		rr := httptest.NewRecorder()

		minAmount := "50"
		h.ListTransactions(rr, newRequest(http.MethodGet, "/transactions", nil), api.ListTransactionsParams{
			Status:    &status,
			MinAmount: &minAmount,
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		var out api.TransactionPage
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		assert.Equal(t, 1, out.Total)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "tx-1", out.Items[0].Id)
	})

	t.Run("Bad amount", func(t *testing.T) {
		h, _, _ := newHandler(t)
		rr := httptest.NewRecorder()

		maxAmount := "lots"
		h.ListTransactions(rr, newRequest(http.MethodGet, "/transactions", nil), api.ListTransactionsParams{MaxAmount: &maxAmount})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode(t, rr).Errors, "maxAmount")
	})
}

func TestGetTransactionStats(t *testing.T) {
	h, lc, _ := newHandler(t)
	stats := models.NewTransactionStats(decimal.NewFromInt(300), 3, 2)
	lc.On("Stats", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(&stats, nil)
	rr := httptest.NewRecorder()

	h.GetTransactionStats(rr, newRequest(http.MethodGet, "/transactions/stats", nil), api.GetTransactionStatsParams{})

	assert.Equal(t, http.StatusOK, rr.Code)
	var out api.TransactionStats
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
	assert.Equal(t, 3, out.TotalTransactions)
	assert.True(t, out.SuccessRate.Equal(decimal.RequireFromString("66.67")))
	assert.True(t, out.AverageAmount.Equal(decimal.NewFromInt(100)))
}

func TestGetTransactionById(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		h, lc, _ := newHandler(t)
		lc.On("Get", mock.Anything, "tx-1").Return(sampleTransaction(models.PENDING), nil)
		rr := httptest.NewRecorder()

		h.GetTransactionById(rr, newRequest(http.MethodGet, "/transactions/tx-1", nil), "tx-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		h, lc, _ := newHandler(t)
		lc.On("Get", mock.Anything, "missing").Return(nil, &lifecycle.Error{Kind: lifecycle.KindNotFound, Message: "transaction not found"})
		rr := httptest.NewRecorder()

		h.GetTransactionById(rr, newRequest(http.MethodGet, "/transactions/missing", nil), "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "transaction not found", decode(t, rr).Message)
	})
}

func TestUpdateTransactionStatus(t *testing.T) {
	t.Run("Processing emits updated", func(t *testing.T) {
		h, lc, emitter := newHandler(t)
		tx := sampleTransaction(models.PROCESSING)
		lc.On("UpdateStatus", mock.Anything, "tx-1", mock.MatchedBy(func(in lifecycle.StatusInput) bool {
			return in.Status == models.PROCESSING && in.Actor == "ops-1"
		})).Return(&lifecycle.StatusChange{Transaction: tx, Previous: models.PENDING}, nil)
		emitter.On("Emit", mock.Anything, mock.MatchedBy(func(evt events.Event) bool {
			var p events.UpdatedPayload
			return evt.Type == events.TypeTransactionUpdated && evt.Decode(&p) == nil && p.PreviousStatus == models.PENDING
		})).Return()
		rr := httptest.NewRecorder()

		h.UpdateTransactionStatus(rr, newRequest(http.MethodPatch, "/transactions/tx-1/status", api.StatusUpdate{Status: api.TransactionStatusProcessing}), "tx-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cancelled emits cancelled", func(t *testing.T) {
		h, lc, emitter := newHandler(t)
		tx := sampleTransaction(models.CANCELLED)
		lc.On("UpdateStatus", mock.Anything, "tx-1", mock.Anything).
			Return(&lifecycle.StatusChange{Transaction: tx, Previous: models.PROCESSING}, nil)
		emitter.On("Emit", mock.Anything, mock.MatchedBy(func(evt events.Event) bool {
			return evt.Type == events.TypeTransactionCancelled
		})).Return()
		rr := httptest.NewRecorder()

		h.UpdateTransactionStatus(rr, newRequest(http.MethodPatch, "/transactions/tx-1/status", api.StatusUpdate{Status: api.TransactionStatusCancelled}), "tx-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Illegal transition", func(t *testing.T) {
		h, lc, emitter := newHandler(t)
		lc.On("UpdateStatus", mock.Anything, "tx-1", mock.Anything).Return(nil, &lifecycle.Error{
			Kind:    lifecycle.KindValidation,
			Message: "invalid status transition",
			Details: map[string]string{"status": "cannot move from completed to pending"},
		})
		rr := httptest.NewRecorder()

		h.UpdateTransactionStatus(rr, newRequest(http.MethodPatch, "/transactions/tx-1/status", api.StatusUpdate{Status: api.TransactionStatusPending}), "tx-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestCancelTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, lc, emitter := newHandler(t)
		tx := sampleTransaction(models.CANCELLED)
		reason := "customer request"
		tx.CancelledReason = &reason
		lc.On("Cancel", mock.Anything, "tx-1", "customer request", "ops-1").
			Return(&lifecycle.StatusChange{Transaction: tx, Previous: models.PENDING}, nil)
		emitter.On("Emit", mock.Anything, mock.MatchedBy(func(evt events.Event) bool {
			var p events.CancelledPayload
			return evt.Type == events.TypeTransactionCancelled && evt.Decode(&p) == nil && p.Reason == "customer request"
		})).Return()
		rr := httptest.NewRecorder()

		h.CancelTransaction(rr, newRequest(http.MethodPatch, "/transactions/tx-1/cancel", api.CancelRequest{Reason: reason}), "tx-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var out api.Transaction
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		assert.Equal(t, api.TransactionStatusCancelled, out.Status)
	})

	t.Run("Already completed", func(t *testing.T) {
		h, lc, _ := newHandler(t)
		lc.On("Cancel", mock.Anything, "tx-1", "late", "ops-1").Return(nil, &lifecycle.Error{
			Kind:    lifecycle.KindValidation,
			Message: "transaction cannot be cancelled",
		})
		rr := httptest.NewRecorder()

		h.CancelTransaction(rr, newRequest(http.MethodPatch, "/transactions/tx-1/cancel", api.CancelRequest{Reason: "late"}), "tx-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
