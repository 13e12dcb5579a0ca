package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/websockets"
)

// NotificationHandler pushes every lifecycle event to connected dashboards.
// The push carries the state the event describes, so redelivery only repeats a message.
type NotificationHandler struct {
	publisher websockets.Publisher
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(publisher websockets.Publisher) *NotificationHandler {
	return &NotificationHandler{publisher: publisher}
}

// Make sure we conform to the interface
var _ Handler = (*NotificationHandler)(nil)

// Handle converts the event into a transactionUpdate message and publishes it.
func (h *NotificationHandler) Handle(ctx context.Context, evt Event) error {
	payload := websockets.TransactionUpdatePayload{
		TransactionID: evt.TransactionID,
		Event:         string(evt.Type),
		OccurredAt:    evt.OccurredAt,
	}

	switch evt.Type {
	case TypeTransactionCreated:
		var p CreatedPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		payload.Reference = p.Reference
		payload.Status = string(p.Status)
	case TypeTransactionUpdated:
		var p UpdatedPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		payload.Reference = p.Reference
		payload.Status = string(p.Status)
		payload.PreviousStatus = string(p.PreviousStatus)
	case TypeTransactionCancelled:
		var p CancelledPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		payload.Reference = p.Reference
		payload.Status = string(models.CANCELLED)
		payload.PreviousStatus = string(p.PreviousStatus)
	default:
		return nil
	}

	msg := websockets.Message{Type: websockets.MessageTypeTransactionUpdate, Payload: payload}
	if err := h.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to push dashboard update: %w", err)
	}
	return nil
}

// AnalyticsHandler records one structured analytics line per event, keyed by event id.
type AnalyticsHandler struct {
	logger *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler writing to logger.
func NewAnalyticsHandler(logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{logger: logger.With("component", "analytics")}
}

// Make sure we conform to the interface
var _ Handler = (*AnalyticsHandler)(nil)

// Handle logs the event with the fields relevant to its type.
func (h *AnalyticsHandler) Handle(ctx context.Context, evt Event) error {
	attrs := []any{
		"event_id", evt.ID,
		"event_type", evt.Type,
		"transaction_id", evt.TransactionID,
		"occurred_at", evt.OccurredAt,
	}

	switch evt.Type {
	case TypeTransactionCreated:
		var p CreatedPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		attrs = append(attrs,
			"reference", p.Reference,
			"sender_id", p.SenderID,
			"receiver_id", p.ReceiverID,
			"amount_source", p.AmountSource.String(),
			"fee", p.Fee.String(),
			"total_source", p.TotalSource.String(),
		)
	case TypeTransactionUpdated:
		var p UpdatedPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		attrs = append(attrs, "status", p.Status, "previous_status", p.PreviousStatus, "updated_by", p.UpdatedBy)
	case TypeTransactionCancelled:
		var p CancelledPayload
		if err := evt.Decode(&p); err != nil {
			return err
		}
		attrs = append(attrs, "previous_status", p.PreviousStatus, "reason", p.Reason, "cancelled_by", p.CancelledBy)
	}

	h.logger.InfoContext(ctx, "transaction event", attrs...)
	return nil
}

// NewConsumerDispatcher builds the dispatcher every consumer runs: dashboard notifications for
// all event types, plus analytics.
func NewConsumerDispatcher(timeout time.Duration, publisher websockets.Publisher, logger *slog.Logger) *Dispatcher {
	d := NewDispatcher(timeout, logger)
	d.Register(NewNotificationHandler(publisher))
	d.Register(NewAnalyticsHandler(logger))
	return d
}
