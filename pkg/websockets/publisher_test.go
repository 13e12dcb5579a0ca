package websockets_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/chris/remittance-transactions/pkg/websockets"
	"github.com/chris/remittance-transactions/pkg/websockets/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleMessage() websockets.Message {
	return websockets.Message{
		Type: websockets.MessageTypeTransactionUpdate,
		Payload: websockets.TransactionUpdatePayload{
			TransactionID: "tx-1",
			Reference:     "RMT-20260315-3F2A9C1E",
			Event:         "TRANSACTION_UPDATED",
			Status:        "processing",
		},
	}
}

func TestAPIGatewayPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts to every connection and prunes gone ones", func(t *testing.T) {
		store := mocks.NewAllConnectionsGetter(t)
		connManager := mocks.NewConnectionManager(t)
		client := mocks.NewPostToConnectionAPI(t)
		publisher := websockets.NewPublisherWithClient(store, connManager, client, discardLogger())

		store.On("GetAllConnections", mock.Anything).Return([]string{"conn-1", "conn-2", "conn-3"}, nil)
		client.On("PostToConnection", mock.Anything, mock.MatchedBy(func(in *apigatewaymanagementapi.PostToConnectionInput) bool {
			var msg map[string]any
			return aws.ToString(in.ConnectionId) == "conn-1" &&
				json.Unmarshal(in.Data, &msg) == nil && msg["type"] == "transactionUpdate"
		})).Return(&apigatewaymanagementapi.PostToConnectionOutput{}, nil)
		client.On("PostToConnection", mock.Anything, mock.MatchedBy(func(in *apigatewaymanagementapi.PostToConnectionInput) bool {
			return aws.ToString(in.ConnectionId) == "conn-2"
		})).Return(nil, &apigwtypes.GoneException{Message: aws.String("gone")})
		client.On("PostToConnection", mock.Anything, mock.MatchedBy(func(in *apigatewaymanagementapi.PostToConnectionInput) bool {
			return aws.ToString(in.ConnectionId) == "conn-3"
		})).Return(nil, errors.New("throttled"))
		connManager.On("RemoveConnection", mock.Anything, "conn-2").Return(nil)

		assert.NoError(t, publisher.Publish(ctx, sampleMessage()))
		connManager.AssertNotCalled(t, "RemoveConnection", mock.Anything, "conn-3")
	})

	t.Run("Connection lookup failure", func(t *testing.T) {
		store := mocks.NewAllConnectionsGetter(t)
		publisher := websockets.NewPublisherWithClient(store, mocks.NewConnectionManager(t), mocks.NewPostToConnectionAPI(t), discardLogger())
		store.On("GetAllConnections", mock.Anything).Return(nil, errors.New("table missing"))

		assert.ErrorContains(t, publisher.Publish(ctx, sampleMessage()), "failed to get all connections")
	})
}

func TestNoOpPublisher(t *testing.T) {
	assert.NoError(t, (&websockets.NoOpPublisher{}).Publish(context.Background(), sampleMessage()))
}
