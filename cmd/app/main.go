package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/config"
	"github.com/chris/remittance-transactions/pkg/events"
	"github.com/chris/remittance-transactions/pkg/fees"
	"github.com/chris/remittance-transactions/pkg/handlers"
	"github.com/chris/remittance-transactions/pkg/handlers/parties"
	"github.com/chris/remittance-transactions/pkg/handlers/transactions"
	wshandler "github.com/chris/remittance-transactions/pkg/handlers/websockets"
	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/logging"
	"github.com/chris/remittance-transactions/pkg/middleware"
	"github.com/chris/remittance-transactions/pkg/storage"
	dydbstore "github.com/chris/remittance-transactions/pkg/storage/dynamodb"
	"github.com/chris/remittance-transactions/pkg/storage/postgres"
	"github.com/chris/remittance-transactions/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
)

func main() {
	cfg, err := config.Load(config.RequireStore, config.RequirePricing)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var hub *websockets.Hub
	if cfg.Events.Bus == config.BusMemory {
		hub = websockets.NewHub(logger)
	}

	bus, closeBus, err := openBus(ctx, cfg, hub, logger)
	if err != nil {
		logger.Error("failed to open event bus", "bus", cfg.Events.Bus, "error", err)
		os.Exit(1)
	}
	defer closeBus()

	emitter := events.NewEmitter(bus, cfg.Events.PublishTimeout, logger)

	manager := lifecycle.NewManager(store, store, fees.StaticRate{Rate: cfg.Pricing.ExchangeRate},
		lifecycle.WithLogger(logger),
		lifecycle.WithStrictTransitions(cfg.Lifecycle.StrictTransitions),
	)

	handler := handlers.NewApiHandler(
		transactions.NewTransactionsHandler(manager, emitter, logger),
		parties.NewPartiesHandler(store, logger),
	)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Actor(cfg.Lifecycle.DefaultActor))
	router.Use(middleware.NewStructuredLogger(logger))

	if hub != nil {
		router.Handle("/ws", wshandler.NewLocalHandler(hub, logger))
	}

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			"port", cfg.Server.Port,
			"store", cfg.Storage.Driver,
			"event_bus", cfg.Events.Bus,
			"strict_transitions", cfg.Lifecycle.StrictTransitions,
			"currency_pair", cfg.Pricing.SourceCurrency+"/"+cfg.Pricing.DestinationCurrency,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", "error", err)
	}
	if err := emitter.Close(shutdownCtx); err != nil {
		logger.Error("pending events were not flushed", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorePostgres:
		store, err := postgres.Open(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, err
		}
		store := dydbstore.New(dynamodb.NewFromConfig(awsCfg),
			cfg.Storage.TransactionsTable, cfg.Storage.PartiesTable, cfg.Storage.ConnectionsTable)
		return store, func() {}, nil
	}
}

func openBus(ctx context.Context, cfg *config.Config, hub *websockets.Hub, logger *slog.Logger) (events.Publisher, func(), error) {
	switch cfg.Events.Bus {
	case config.BusSQS:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, err
		}
		return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.Events.SQSQueueURL), func() {}, nil
	case config.BusNATS:
		nc, err := nats.Connect(cfg.Events.NATSURL, nats.Name("remittance-api"))
		if err != nil {
			return nil, nil, err
		}
		js, err := nc.JetStream()
		if err != nil {
			nc.Close()
			return nil, nil, err
		}
		if err := events.EnsureStream(js, cfg.Events.Topic); err != nil {
			nc.Close()
			return nil, nil, err
		}
		return events.NewNATSPublisher(js, cfg.Events.Topic), func() { nc.Drain() }, nil
	case config.BusMemory:
		dispatcher := events.NewConsumerDispatcher(cfg.Events.HandlerTimeout, hub, logger)
		return events.NewMemoryBus(dispatcher), func() {}, nil
	default:
		return &events.NoOpPublisher{}, func() {}, nil
	}
}
