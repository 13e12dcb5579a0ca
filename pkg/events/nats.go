package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	headerTransactionID = "Transaction-Id"
	headerEventType     = "Event-Type"
)

// JetStreamPublisher is the subset of nats.JetStreamContext used for publishing.
type JetStreamPublisher interface {
	PublishMsg(m *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// NATSPublisher implements the Publisher interface on a JetStream subject.
type NATSPublisher struct {
	JS      JetStreamPublisher
	Subject string
}

// NewNATSPublisher creates a new NATSPublisher.
func NewNATSPublisher(js JetStreamPublisher, subject string) *NATSPublisher {
	return &NATSPublisher{JS: js, Subject: subject}
}

// Make sure we conform to the interface
var _ Publisher = (*NATSPublisher)(nil)

// Publish sends the event to JetStream. The event id doubles as the message id so the
// stream drops duplicate publishes within its deduplication window.
func (p *NATSPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event for NATS: %w", err)
	}

	msg := nats.NewMsg(p.Subject)
	msg.Data = body
	msg.Header.Set(nats.MsgIdHdr, evt.ID)
	msg.Header.Set(headerTransactionID, evt.TransactionID)
	msg.Header.Set(headerEventType, string(evt.Type))

	if _, err := p.JS.PublishMsg(msg, nats.Context(ctx)); err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}
	return nil
}

// StreamName derives a JetStream stream name from a subject.
func StreamName(subject string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(subject))
}

// EnsureStream creates the stream backing subject if it does not exist yet.
func EnsureStream(js nats.JetStreamManager, subject string) error {
	name := StreamName(subject)
	_, err := js.StreamInfo(name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", name, err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:       name,
		Subjects:   []string{subject},
		Storage:    nats.FileStorage,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", name, err)
	}
	return nil
}

// NATSConsumer feeds a durable JetStream queue subscription into a Dispatcher.
type NATSConsumer struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewNATSConsumer creates a NATSConsumer.
func NewNATSConsumer(dispatcher *Dispatcher, logger *slog.Logger) *NATSConsumer {
	return &NATSConsumer{dispatcher: dispatcher, logger: logger}
}

// Subscribe starts a manual-ack queue subscription shared by every worker in group.
func (c *NATSConsumer) Subscribe(js nats.JetStreamContext, subject, group string, ackWait time.Duration) (*nats.Subscription, error) {
	sub, err := js.QueueSubscribe(subject, group, c.handle,
		nats.Durable(group),
		nats.ManualAck(),
		nats.AckWait(ackWait),
		nats.DeliverAll(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	return sub, nil
}

func (c *NATSConsumer) handle(msg *nats.Msg) {
	if err := c.dispatcher.DispatchMessage(context.Background(), msg.Data); err != nil {
		// The server redelivers nak'd messages to another member of the group.
		if nakErr := msg.Nak(); nakErr != nil {
			c.logger.Error("failed to nak message", "subject", msg.Subject, "error", nakErr)
		}
		return
	}
	if err := msg.Ack(); err != nil {
		c.logger.Error("failed to ack message", "subject", msg.Subject, "error", err)
	}
}
