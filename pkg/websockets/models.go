package websockets

import "time"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeTransactionUpdate is pushed to dashboards whenever a transaction changes.
	MessageTypeTransactionUpdate MessageType = "transactionUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// TransactionUpdatePayload is the payload for a transactionUpdate message.
type TransactionUpdatePayload struct {
	TransactionID  string    `json:"transaction_id"`
	Reference      string    `json:"reference"`
	Event          string    `json:"event"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
