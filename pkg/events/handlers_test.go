package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/websockets"
	ws_mocks "github.com/chris/remittance-transactions/pkg/websockets/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("Created", func(t *testing.T) {
		evt, err := events.TransactionCreated(sampleTransaction())
		require.NoError(t, err)

		publisher := ws_mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg websockets.Message) bool {
			p, ok := msg.Payload.(websockets.TransactionUpdatePayload)
			return ok && msg.Type == websockets.MessageTypeTransactionUpdate &&
				p.TransactionID == "tx-1" &&
				p.Reference == "RMT-20260315-3F2A9C1E" &&
				p.Status == "pending" &&
				p.Event == "TRANSACTION_CREATED"
		})).Return(nil)

		require.NoError(t, events.NewNotificationHandler(publisher).Handle(ctx, evt))
	})

	t.Run("Cancelled", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Status = models.CANCELLED
		evt, err := events.TransactionCancelled(tx, models.PENDING)
		require.NoError(t, err)

		publisher := ws_mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg websockets.Message) bool {
			p := msg.Payload.(websockets.TransactionUpdatePayload)
			return p.Status == "cancelled" && p.PreviousStatus == "pending"
		})).Return(nil)

		require.NoError(t, events.NewNotificationHandler(publisher).Handle(ctx, evt))
	})

	t.Run("Publish failure is returned for redelivery", func(t *testing.T) {
		tx := sampleTransaction()
		tx.Status = models.PROCESSING
		evt, err := events.TransactionUpdated(tx, models.PENDING)
		require.NoError(t, err)

		publisher := ws_mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("gateway down"))

		assert.Error(t, events.NewNotificationHandler(publisher).Handle(ctx, evt))
	})
}

func TestAnalyticsHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	evt, err := events.TransactionCreated(sampleTransaction())
	require.NoError(t, err)

	require.NoError(t, events.NewAnalyticsHandler(logger).Handle(context.Background(), evt))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "transaction event", line["msg"])
	assert.Equal(t, "analytics", line["component"])
	assert.Equal(t, evt.ID, line["event_id"])
	assert.Equal(t, "100000", line["amount_source"])
	assert.Equal(t, "100543.48", line["total_source"])
}

func TestNewConsumerDispatcher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	publisher := ws_mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg websockets.Message) bool {
		p, ok := msg.Payload.(websockets.TransactionUpdatePayload)
		return ok && p.Event == string(events.TypeTransactionCreated)
	})).Return(nil).Once()

	evt, err := events.TransactionCreated(sampleTransaction())
	require.NoError(t, err)

	d := events.NewConsumerDispatcher(time.Second, publisher, logger)

	require.NoError(t, d.Dispatch(context.Background(), evt))
	assert.Contains(t, buf.String(), `"component":"analytics"`)
}
