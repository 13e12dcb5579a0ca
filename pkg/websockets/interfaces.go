package websockets

import (
	"context"
)

// ConnectionManager defines the interface for tracking dashboard WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher defines the interface for pushing messages to connected dashboards.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// NoOpPublisher discards every message. It is used when no dashboard transport is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
