package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/remittance-transactions/pkg/config"
	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/logging"
	dydbstore "github.com/chris/remittance-transactions/pkg/storage/dynamodb"
	"github.com/chris/remittance-transactions/pkg/websockets"
	"github.com/nats-io/nats.go"
)

// The NATS worker consumes the transaction event stream as one member of a durable queue group.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if cfg.Websockets.APIEndpoint != "" && cfg.Storage.ConnectionsTable != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		connections := dydbstore.New(dynamodb.NewFromConfig(awsCfg), "", "", cfg.Storage.ConnectionsTable)
		publisher, err = websockets.NewPublisher(ctx, connections, connections, cfg.Websockets.APIEndpoint, logger)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	nc, err := nats.Connect(cfg.Events.NATSURL, nats.Name("remittance-consumer"))
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	defer nc.Drain()

	js, err := nc.JetStream()
	if err != nil {
		log.Fatalf("failed to open jetstream: %v", err)
	}
	if err := events.EnsureStream(js, cfg.Events.Topic); err != nil {
		log.Fatalf("failed to ensure stream: %v", err)
	}

	dispatcher := events.NewConsumerDispatcher(cfg.Events.HandlerTimeout, publisher, logger)
	sub, err := events.NewNATSConsumer(dispatcher, logger).
		Subscribe(js, cfg.Events.Topic, cfg.Events.ConsumerGroup, cfg.Events.ConsumerAckWait)
	if err != nil {
		log.Fatalf("failed to subscribe: %v", err)
	}

	logger.Info("consumer started", "subject", cfg.Events.Topic, "group", cfg.Events.ConsumerGroup)
	<-ctx.Done()

	logger.Info("consumer stopping")
	if err := sub.Drain(); err != nil {
		logger.Error("failed to drain subscription", "error", err)
	}
}
