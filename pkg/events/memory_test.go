package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus(t *testing.T) {
	evt, err := events.TransactionCreated(sampleTransaction())
	require.NoError(t, err)

	t.Run("Delivers through the dispatcher", func(t *testing.T) {
		received := make(chan events.Event, 1)
		d := events.NewDispatcher(time.Second, discardLogger())
		d.Register(events.HandlerFunc(func(ctx context.Context, e events.Event) error {
			received <- e
			return nil
		}), events.TypeTransactionCreated)

		bus := events.NewMemoryBus(d)
		emitter := events.NewEmitter(bus, time.Second, discardLogger())
		emitter.Emit(context.Background(), evt)
		require.NoError(t, emitter.Close(context.Background()))

		select {
		case got := <-received:
			assert.Equal(t, evt.ID, got.ID)
		default:
			t.Fatal("event was not delivered")
		}
	})

	t.Run("Surfaces handler errors", func(t *testing.T) {
		d := events.NewDispatcher(time.Second, discardLogger())
		d.Register(events.HandlerFunc(func(ctx context.Context, e events.Event) error {
			return errors.New("handler failed")
		}))

		bus := events.NewMemoryBus(d)
		assert.Error(t, bus.Publish(context.Background(), evt))
	})
}
