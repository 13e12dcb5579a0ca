package main

import (
	"context"
	"log"
	"log/slog"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/remittance-transactions/pkg/config"
	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/logging"
	"github.com/chris/remittance-transactions/pkg/storage"
	dydbstore "github.com/chris/remittance-transactions/pkg/storage/dynamodb"
	"github.com/chris/remittance-transactions/pkg/websockets"
)

// MessageDispatcher is the part of events.Dispatcher the Lambda drives.
type MessageDispatcher interface {
	DispatchMessage(ctx context.Context, body []byte) error
}

// Consumer turns SQS batches into dispatcher calls.
type Consumer struct {
	dispatcher MessageDispatcher
	logger     *slog.Logger
}

// HandleRequest dispatches every record and reports the failed ones as partial batch failures,
// so SQS only redelivers those. Records that keep failing reach the queue's DLQ.
func (c *Consumer) HandleRequest(ctx context.Context, sqsEvent awsevents.SQSEvent) (awsevents.SQSEventResponse, error) {
	var resp awsevents.SQSEventResponse
	for _, message := range sqsEvent.Records {
		if err := c.dispatcher.DispatchMessage(ctx, []byte(message.Body)); err != nil {
			c.logger.ErrorContext(ctx, "failed to process event message",
				"message_id", message.MessageId,
				"receive_count", message.Attributes["ApproximateReceiveCount"],
				"error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, awsevents.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		c.logger.DebugContext(ctx, "processed event message", "message_id", message.MessageId)
	}
	return resp, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if cfg.Websockets.APIEndpoint != "" && cfg.Storage.ConnectionsTable != "" {
		var connections storage.WebSocketManager = dydbstore.New(dynamodb.NewFromConfig(awsCfg), "", "", cfg.Storage.ConnectionsTable)
		publisher, err = websockets.NewPublisher(ctx, connections, connections, cfg.Websockets.APIEndpoint, logger)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	consumer := &Consumer{
		dispatcher: events.NewConsumerDispatcher(cfg.Events.HandlerTimeout, publisher, logger),
		logger:     logger,
	}
	lambda.Start(consumer.HandleRequest)
}
