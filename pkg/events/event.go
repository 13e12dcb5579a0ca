// Package events carries transaction lifecycle notifications from the API to independent
// consumers. Publishing is best effort and never blocks a request; consumers dispatch each
// event to side-effect handlers by type.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTopic is the queue, subject or topic lifecycle events are published on.
const DefaultTopic = "transaction-events"

// Type identifies the kind of lifecycle event.
type Type string

const (
	TypeTransactionCreated   Type = "TRANSACTION_CREATED"
	TypeTransactionUpdated   Type = "TRANSACTION_UPDATED"
	TypeTransactionCancelled Type = "TRANSACTION_CANCELLED"
)

// Types lists every event type the API emits.
var Types = []Type{TypeTransactionCreated, TypeTransactionUpdated, TypeTransactionCancelled}

// Event is the envelope sent over the bus. TransactionID is the partition/ordering key.
type Event struct {
	ID            string          `json:"id"`
	Type          Type            `json:"type"`
	TransactionID string          `json:"transactionId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}
	return nil
}

// CreatedPayload describes a newly created transaction.
type CreatedPayload struct {
	Reference       string                   `json:"reference"`
	SenderID        string                   `json:"senderId"`
	ReceiverID      string                   `json:"receiverId"`
	AmountSource    decimal.Decimal          `json:"amountSource"`
	AmountConverted decimal.Decimal          `json:"amountConverted"`
	Fee             decimal.Decimal          `json:"fee"`
	FeeSource       decimal.Decimal          `json:"feeSource"`
	ExchangeRate    decimal.Decimal          `json:"exchangeRate"`
	TotalSource     decimal.Decimal          `json:"totalSource"`
	Status          models.TransactionStatus `json:"status"`
	Purpose         string                   `json:"purpose"`
	CreatedBy       string                   `json:"createdBy"`
}

// UpdatedPayload describes a status change.
type UpdatedPayload struct {
	Reference      string                   `json:"reference"`
	Status         models.TransactionStatus `json:"status"`
	PreviousStatus models.TransactionStatus `json:"previousStatus"`
	Notes          *string                  `json:"notes,omitempty"`
	UpdatedBy      string                   `json:"updatedBy"`
}

// CancelledPayload describes a cancellation.
type CancelledPayload struct {
	Reference      string                   `json:"reference"`
	PreviousStatus models.TransactionStatus `json:"previousStatus"`
	Reason         string                   `json:"reason"`
	CancelledBy    string                   `json:"cancelledBy"`
	CancelledAt    *time.Time               `json:"cancelledAt,omitempty"`
}

// TransactionCreated builds a TRANSACTION_CREATED event for tx.
func TransactionCreated(tx *models.Transaction) (Event, error) {
	return newEvent(TypeTransactionCreated, tx, tx.CreatedAt, CreatedPayload{
		Reference:       tx.Reference,
		SenderID:        tx.SenderId,
		ReceiverID:      tx.ReceiverId,
		AmountSource:    tx.AmountSource,
		AmountConverted: tx.AmountConverted,
		Fee:             tx.Fee,
		FeeSource:       tx.FeeSource,
		ExchangeRate:    tx.ExchangeRate,
		TotalSource:     tx.TotalSource,
		Status:          tx.Status,
		Purpose:         tx.Purpose,
		CreatedBy:       tx.CreatedBy,
	})
}

// TransactionUpdated builds a TRANSACTION_UPDATED event for a status change from prev.
func TransactionUpdated(tx *models.Transaction, prev models.TransactionStatus) (Event, error) {
	return newEvent(TypeTransactionUpdated, tx, tx.UpdatedAt, UpdatedPayload{
		Reference:      tx.Reference,
		Status:         tx.Status,
		PreviousStatus: prev,
		Notes:          tx.Notes,
		UpdatedBy:      deref(tx.UpdatedBy),
	})
}

// TransactionCancelled builds a TRANSACTION_CANCELLED event for tx.
func TransactionCancelled(tx *models.Transaction, prev models.TransactionStatus) (Event, error) {
	return newEvent(TypeTransactionCancelled, tx, tx.UpdatedAt, CancelledPayload{
		Reference:      tx.Reference,
		PreviousStatus: prev,
		Reason:         deref(tx.CancelledReason),
		CancelledBy:    deref(tx.UpdatedBy),
		CancelledAt:    tx.CancelledAt,
	})
}

func newEvent(t Type, tx *models.Transaction, at time.Time, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}
	return Event{
		ID:            uuid.NewString(),
		Type:          t,
		TransactionID: tx.Id,
		OccurredAt:    at,
		Payload:       body,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
