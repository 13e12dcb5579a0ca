package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func sampleTransaction() *models.Transaction {
	return &models.Transaction{
		Id:              "tx-1",
		Reference:       "RMT-20260315-3F2A9C1E",
		SenderId:        "sender-1",
		ReceiverId:      "receiver-1",
		AmountSource:    decimal.NewFromInt(100000),
		AmountConverted: decimal.NewFromInt(92000),
		Fee:             decimal.NewFromInt(500),
		FeeSource:       decimal.RequireFromString("543.48"),
		ExchangeRate:    decimal.RequireFromString("0.92"),
		TotalSource:     decimal.RequireFromString("100543.48"),
		Status:          models.PENDING,
		Purpose:         "tuition",
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
		CreatedBy:       "admin-1",
		Version:         1,
	}
}

func TestTransactionCreated(t *testing.T) {
	tx := sampleTransaction()

	evt, err := events.TransactionCreated(tx)
	require.NoError(t, err)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, events.TypeTransactionCreated, evt.Type)
	assert.Equal(t, "tx-1", evt.TransactionID)
	assert.Equal(t, createdAt, evt.OccurredAt)

	var p events.CreatedPayload
	require.NoError(t, evt.Decode(&p))
	assert.Equal(t, "RMT-20260315-3F2A9C1E", p.Reference)
	assert.True(t, p.TotalSource.Equal(decimal.RequireFromString("100543.48")))
	assert.Equal(t, models.PENDING, p.Status)
	assert.Equal(t, "admin-1", p.CreatedBy)
}

func TestTransactionUpdatedAndCancelled(t *testing.T) {
	tx := sampleTransaction()
	actor := "ops-7"
	reason := "customer request"
	cancelledAt := createdAt.Add(time.Hour)
	tx.Status = models.CANCELLED
	tx.UpdatedBy = &actor
	tx.UpdatedAt = cancelledAt
	tx.CancelledAt = &cancelledAt
	tx.CancelledReason = &reason

	updated, err := events.TransactionUpdated(tx, models.PROCESSING)
	require.NoError(t, err)
	assert.Equal(t, cancelledAt, updated.OccurredAt)

	var up events.UpdatedPayload
	require.NoError(t, updated.Decode(&up))
	assert.Equal(t, models.CANCELLED, up.Status)
	assert.Equal(t, models.PROCESSING, up.PreviousStatus)
	assert.Equal(t, "ops-7", up.UpdatedBy)

	cancelled, err := events.TransactionCancelled(tx, models.PROCESSING)
	require.NoError(t, err)
	assert.NotEqual(t, updated.ID, cancelled.ID)

	var cp events.CancelledPayload
	require.NoError(t, cancelled.Decode(&cp))
	assert.Equal(t, "customer request", cp.Reason)
	assert.Equal(t, "ops-7", cp.CancelledBy)
	assert.Equal(t, cancelledAt, *cp.CancelledAt)
}

func TestEventEnvelopeJSON(t *testing.T) {
	evt, err := events.TransactionCreated(sampleTransaction())
	require.NoError(t, err)

	body, err := json.Marshal(evt)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "TRANSACTION_CREATED", raw["type"])
	assert.Equal(t, "tx-1", raw["transactionId"])
	assert.Contains(t, raw, "payload")
	assert.Contains(t, raw, "occurredAt")
}

func TestDecodeRejectsMismatchedPayload(t *testing.T) {
	evt := events.Event{Type: events.TypeTransactionUpdated, Payload: json.RawMessage(`"not an object"`)}

	var p events.UpdatedPayload
	assert.Error(t, evt.Decode(&p))
}
