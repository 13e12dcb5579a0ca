package websockets_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	handler "github.com/chris/remittance-transactions/pkg/handlers/websockets"
	"github.com/chris/remittance-transactions/pkg/websockets"
	"github.com/chris/remittance-transactions/pkg/websockets/mocks"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(routeKey, connectionID string) events.APIGatewayWebsocketProxyRequest {
	return events.APIGatewayWebsocketProxyRequest{
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{
			RouteKey:     routeKey,
			ConnectionID: connectionID,
		},
	}
}

func TestRoute(t *testing.T) {
	t.Run("Connect", func(t *testing.T) {
		connManager := mocks.NewConnectionManager(t)
		connManager.On("AddConnection", context.Background(), "conn-1").Return(nil)
		h := handler.NewHandler(connManager, nil)

		resp, err := h.Route(context.Background(), request("$connect", "conn-1"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Disconnect", func(t *testing.T) {
		connManager := mocks.NewConnectionManager(t)
		connManager.On("RemoveConnection", context.Background(), "conn-1").Return(nil)
		h := handler.NewHandler(connManager, nil)

		resp, err := h.Route(context.Background(), request("$disconnect", "conn-1"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Connect store failure", func(t *testing.T) {
		connManager := mocks.NewConnectionManager(t)
		connManager.On("AddConnection", context.Background(), "conn-1").Return(errors.New("throttled"))
		h := handler.NewHandler(connManager, nil)

		resp, err := h.Route(context.Background(), request("$connect", "conn-1"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Default ignores messages", func(t *testing.T) {
		h := handler.NewHandler(mocks.NewConnectionManager(t), nil)

		resp, err := h.Route(context.Background(), request("$default", "conn-1"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestServeHTTP_Local(t *testing.T) {
	hub := websockets.NewHub(nil)
	server := httptest.NewServer(handler.NewLocalHandler(hub, nil))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	msg := websockets.Message{
		Type:    websockets.MessageTypeTransactionUpdate,
		Payload: websockets.TransactionUpdatePayload{TransactionID: "tx-1", Status: "processing"},
	}
	require.NoError(t, hub.Publish(context.Background(), msg))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transaction_id":"tx-1"`)

	client.Close()
	require.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServeHTTP_WithoutHub(t *testing.T) {
	h := handler.NewHandler(mocks.NewConnectionManager(t), nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
