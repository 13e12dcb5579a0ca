package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/remittance-transactions/pkg/config"
	wshandler "github.com/chris/remittance-transactions/pkg/handlers/websockets"
	"github.com/chris/remittance-transactions/pkg/logging"
	dydbstore "github.com/chris/remittance-transactions/pkg/storage/dynamodb"
)

// The websocket Lambda serves the API Gateway $connect, $disconnect and $default routes
// of the dashboard websocket API.
func main() {
	cfg, err := config.Load(config.RequireConnections)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connections := dydbstore.New(dynamodb.NewFromConfig(awsCfg), "", "", cfg.Storage.ConnectionsTable)
	lambda.Start(wshandler.NewHandler(connections, logger).Route)
}
