package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// MemoryBus delivers events to an in-process Dispatcher. It is meant for local development,
// where there is no broker between the API and the consumer. Delivery goes through the same
// JSON encoding a real bus would use.
type MemoryBus struct {
	dispatcher *Dispatcher
}

// NewMemoryBus creates a MemoryBus feeding dispatcher.
func NewMemoryBus(dispatcher *Dispatcher) *MemoryBus {
	return &MemoryBus{dispatcher: dispatcher}
}

// Make sure we conform to the interface
var _ Publisher = (*MemoryBus)(nil)

// Publish dispatches the event synchronously. Wrap the bus in an Emitter to keep it off the
// request path.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.dispatcher.DispatchMessage(ctx, body)
}
