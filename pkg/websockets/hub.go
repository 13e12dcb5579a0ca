package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultWriteTimeout bounds a single write to a local dashboard connection.
const DefaultWriteTimeout = 5 * time.Second

// Conn is the write side of a websocket connection.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client serializes writes to one connection, as gorilla allows a single concurrent writer.
type client struct {
	mu   sync.Mutex
	conn Conn
}

// Hub tracks dashboards connected directly to the local server and broadcasts to them.
type Hub struct {
	mu           sync.Mutex
	clients      map[string]*client
	writeTimeout time.Duration
	logger       *slog.Logger
}

// Make sure we conform to the interface
var _ Publisher = (*Hub)(nil)

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) { h.writeTimeout = d }
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{clients: map[string]*client{}, writeTimeout: DefaultWriteTimeout, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add registers a connection under id.
func (h *Hub) Add(id string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[id] = &client{conn: conn}
}

// Remove forgets the connection registered under id.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// Len returns the number of registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish writes message to every connection registered when the call starts. Each write
// carries a deadline, the earlier of the write timeout and ctx's deadline, and the hub lock
// is not held while writing. Connections that fail a write are closed and dropped.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mu.Lock()
	snapshot := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		snapshot[id] = c
	}
	h.mu.Unlock()

	for id, c := range snapshot {
		if err := c.write(h.deadline(ctx), payload); err != nil {
			h.logger.WarnContext(ctx, "dropping local connection after failed write", "connection_id", id, "error", err)
			c.conn.Close()
			h.drop(id, c)
		}
	}
	return nil
}

func (h *Hub) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(h.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}

// drop removes id only if it still maps to c, so a reconnect under the same id survives.
func (h *Hub) drop(id string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[id] == c {
		delete(h.clients, id)
	}
}

func (c *client) write(deadline time.Time, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}
