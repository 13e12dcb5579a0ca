package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// AllConnectionsGetter defines an interface for getting all connection IDs.
type AllConnectionsGetter interface {
	GetAllConnections(ctx context.Context) ([]string, error)
}

// PostToConnectionAPI is the subset of the API Gateway management client used for pushes.
type PostToConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}

// APIGatewayPublisher pushes messages to every dashboard connected through API Gateway.
type APIGatewayPublisher struct {
	store       AllConnectionsGetter
	connManager ConnectionManager
	client      PostToConnectionAPI
	logger      *slog.Logger
}

// Make sure we conform to the interface
var _ Publisher = (*APIGatewayPublisher)(nil)

// NewPublisher creates an APIGatewayPublisher for the given websocket API endpoint.
func NewPublisher(ctx context.Context, store AllConnectionsGetter, connManager ConnectionManager, apiEndpoint string, logger *slog.Logger) (*APIGatewayPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return NewPublisherWithClient(store, connManager, client, logger), nil
}

// NewPublisherWithClient creates an APIGatewayPublisher around an existing client.
func NewPublisherWithClient(store AllConnectionsGetter, connManager ConnectionManager, client PostToConnectionAPI, logger *slog.Logger) *APIGatewayPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIGatewayPublisher{
		store:       store,
		connManager: connManager,
		client:      client,
		logger:      logger,
	}
}

// Publish sends a message to all connected clients. Connections that API Gateway reports as
// gone are removed; other per-connection failures are logged and skipped.
func (p *APIGatewayPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.store.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			p.logger.InfoContext(ctx, "stale connection found, deleting", "connection_id", connectionID)
			if err := p.connManager.RemoveConnection(ctx, connectionID); err != nil {
				p.logger.ErrorContext(ctx, "failed to delete stale connection", "connection_id", connectionID, "error", err)
			}
		} else {
			p.logger.ErrorContext(ctx, "failed to post to connection", "connection_id", connectionID, "error", err)
		}
	}

	return nil
}
