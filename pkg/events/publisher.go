package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Publisher defines the interface for sending lifecycle events to the bus.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NoOpPublisher drops every event.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, evt Event) error {
	return nil
}

// DefaultPublishTimeout bounds a single background publish.
const DefaultPublishTimeout = 5 * time.Second

// Emitter publishes events in the background so that callers never wait on the bus.
// Failures are logged and discarded.
type Emitter struct {
	publisher Publisher
	timeout   time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewEmitter creates an Emitter. A non-positive timeout selects DefaultPublishTimeout.
func NewEmitter(publisher Publisher, timeout time.Duration, logger *slog.Logger) *Emitter {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{publisher: publisher, timeout: timeout, logger: logger}
}

// Emit publishes evt on a new goroutine and returns immediately.
// The publish outlives ctx's cancellation but keeps its values.
func (e *Emitter) Emit(ctx context.Context, evt Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		e.logger.WarnContext(ctx, "emitter closed, dropping event",
			"event_id", evt.ID, "event_type", evt.Type, "transaction_id", evt.TransactionID)
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()

		if err := e.publisher.Publish(pubCtx, evt); err != nil {
			e.logger.ErrorContext(pubCtx, "failed to publish event",
				"event_id", evt.ID, "event_type", evt.Type, "transaction_id", evt.TransactionID, "error", err)
			return
		}
		e.logger.DebugContext(pubCtx, "event published",
			"event_id", evt.ID, "event_type", evt.Type, "transaction_id", evt.TransactionID)
	}()
}

// Close stops accepting events and waits for in-flight publishes or ctx, whichever comes first.
func (e *Emitter) Close(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
