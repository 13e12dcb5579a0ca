package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultHandlerTimeout bounds a single handler invocation.
const DefaultHandlerTimeout = 30 * time.Second

// ErrMalformedEvent is returned when a message body is not a decodable event.
var ErrMalformedEvent = errors.New("malformed event")

// Handler performs one side effect for an event. Handlers must tolerate redelivery.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Dispatcher routes events to the handlers registered for their type.
type Dispatcher struct {
	handlers map[Type][]Handler
	timeout  time.Duration
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher. A non-positive timeout selects DefaultHandlerTimeout.
func NewDispatcher(timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultHandlerTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{handlers: map[Type][]Handler{}, timeout: timeout, logger: logger}
}

// Register adds h for the given event types, or for every known type if none are given.
func (d *Dispatcher) Register(h Handler, types ...Type) {
	if len(types) == 0 {
		types = Types
	}
	for _, t := range types {
		d.handlers[t] = append(d.handlers[t], h)
	}
}

// DispatchMessage decodes a raw message body and dispatches it.
func (d *Dispatcher) DispatchMessage(ctx context.Context, body []byte) error {
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		d.logger.ErrorContext(ctx, "failed to decode event", "error", err)
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if evt.ID == "" || evt.Type == "" {
		d.logger.ErrorContext(ctx, "event is missing id or type", "event_id", evt.ID, "event_type", evt.Type)
		return fmt.Errorf("%w: missing id or type", ErrMalformedEvent)
	}
	return d.Dispatch(ctx, evt)
}

// Dispatch runs every handler registered for evt.Type, each under its own timeout.
// Unknown types are logged and ignored. Handler errors are joined and returned so that the
// bus can redeliver.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) error {
	handlers, ok := d.handlers[evt.Type]
	if !ok {
		d.logger.WarnContext(ctx, "ignoring event of unknown type",
			"event_id", evt.ID, "event_type", evt.Type, "transaction_id", evt.TransactionID)
		return nil
	}

	var errs []error
	for _, h := range handlers {
		if err := d.run(ctx, h, evt); err != nil {
			d.logger.ErrorContext(ctx, "event handler failed",
				"event_id", evt.ID, "event_type", evt.Type, "transaction_id", evt.TransactionID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) run(ctx context.Context, h Handler, evt Event) error {
	hctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.Handle(hctx, evt) }()

	select {
	case err := <-done:
		return err
	case <-hctx.Done():
		return fmt.Errorf("handler timed out after %s: %w", d.timeout, hctx.Err())
	}
}
