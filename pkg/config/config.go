// Package config loads service configuration from the environment, after an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Store drivers.
const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Event bus drivers.
const (
	BusSQS    = "sqs"
	BusNATS   = "nats"
	BusMemory = "memory"
	BusNone   = "none"
)

// Requirement names a group of settings a binary cannot start without. Settings outside
// the requested groups are parsed but only checked for well-formedness.
type Requirement int

const (
	// RequireStore validates STORE_DRIVER and the selected driver's connection settings.
	RequireStore Requirement = iota + 1
	// RequirePricing requires an explicit, positive EXCHANGE_RATE.
	RequirePricing
	// RequireConnections requires DYNAMODB_CONNECTIONS_TABLE_NAME.
	RequireConnections
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Events     EventsConfig
	Pricing    PricingConfig
	Lifecycle  LifecycleConfig
	Logging    LoggingConfig
	Websockets WebsocketsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// StorageConfig selects and configures the record store.
type StorageConfig struct {
	Driver            string
	TransactionsTable string
	PartiesTable      string
	ConnectionsTable  string
	DatabaseURL       string
}

// EventsConfig selects and configures the event bus.
type EventsConfig struct {
	Bus             string
	Topic           string
	SQSQueueURL     string
	NATSURL         string
	ConsumerGroup   string
	PublishTimeout  time.Duration
	HandlerTimeout  time.Duration
	ConsumerAckWait time.Duration
}

// PricingConfig holds the static exchange rate and the currency pair it prices.
type PricingConfig struct {
	ExchangeRate        decimal.Decimal
	SourceCurrency      string
	DestinationCurrency string
}

// LifecycleConfig holds transaction lifecycle policy.
type LifecycleConfig struct {
	StrictTransitions bool
	DefaultActor      string
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// WebsocketsConfig holds the dashboard push configuration.
type WebsocketsConfig struct {
	APIEndpoint string
}

// Load reads configuration from environment variables. A .env file, if present, is loaded first.
func Load(reqs ...Requirement) (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()
	return FromEnv(os.Getenv, reqs...)
}

// FromEnv builds a Config from the given lookup function and validates it against reqs.
func FromEnv(getenv func(string) string, reqs ...Requirement) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		Server: ServerConfig{
			Port:            p.str("HTTP_PORT", "8080"),
			ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Storage: StorageConfig{
			Driver:            strings.ToLower(p.str("STORE_DRIVER", StoreDynamoDB)),
			TransactionsTable: p.str("DYNAMODB_TRANSACTIONS_TABLE_NAME", ""),
			PartiesTable:      p.str("DYNAMODB_PARTIES_TABLE_NAME", ""),
			ConnectionsTable:  p.str("DYNAMODB_CONNECTIONS_TABLE_NAME", ""),
			DatabaseURL:       p.str("DATABASE_URL", ""),
		},
		Events: EventsConfig{
			Bus:             strings.ToLower(p.str("EVENT_BUS", BusNone)),
			Topic:           p.str("EVENTS_TOPIC", "transaction-events"),
			SQSQueueURL:     p.str("SQS_QUEUE_URL", ""),
			NATSURL:         p.str("NATS_URL", "nats://127.0.0.1:4222"),
			ConsumerGroup:   p.str("EVENTS_CONSUMER_GROUP", "transaction-consumers"),
			PublishTimeout:  p.duration("EVENT_PUBLISH_TIMEOUT", 5*time.Second),
			HandlerTimeout:  p.duration("CONSUMER_HANDLER_TIMEOUT", 30*time.Second),
			ConsumerAckWait: p.duration("CONSUMER_ACK_WAIT", 60*time.Second),
		},
		Pricing: PricingConfig{
			ExchangeRate:        p.decimal("EXCHANGE_RATE"),
			SourceCurrency:      strings.ToUpper(p.str("SOURCE_CURRENCY", "USD")),
			DestinationCurrency: strings.ToUpper(p.str("DESTINATION_CURRENCY", "NPR")),
		},
		Lifecycle: LifecycleConfig{
			StrictTransitions: p.boolean("STRICT_STATUS_TRANSITIONS", true),
			DefaultActor:      p.str("DEFAULT_ACTOR", "system"),
		},
		Logging: LoggingConfig{
			Level:  p.str("LOG_LEVEL", "info"),
			Format: strings.ToLower(p.str("LOG_FORMAT", "json")),
		},
		Websockets: WebsocketsConfig{
			APIEndpoint: p.str("WEBSOCKET_API_ENDPOINT", ""),
		},
	}

	errs := append(p.errs, cfg.validate(reqs)...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func (c *Config) validate(reqs []Requirement) []error {
	required := map[Requirement]bool{}
	for _, r := range reqs {
		required[r] = true
	}

	var errs []error
	if required[RequireStore] {
		switch c.Storage.Driver {
		case StoreDynamoDB:
			if c.Storage.TransactionsTable == "" || c.Storage.PartiesTable == "" {
				errs = append(errs, errors.New("DYNAMODB_TRANSACTIONS_TABLE_NAME and DYNAMODB_PARTIES_TABLE_NAME are required for the dynamodb store"))
			}
		case StorePostgres:
			if c.Storage.DatabaseURL == "" {
				errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
			}
		default:
			errs = append(errs, fmt.Errorf("STORE_DRIVER must be %s or %s, got %q", StoreDynamoDB, StorePostgres, c.Storage.Driver))
		}
	}
	if required[RequireConnections] && c.Storage.ConnectionsTable == "" {
		errs = append(errs, errors.New("DYNAMODB_CONNECTIONS_TABLE_NAME is required"))
	}

	switch c.Events.Bus {
	case BusSQS:
		if c.Events.SQSQueueURL == "" {
			errs = append(errs, errors.New("SQS_QUEUE_URL is required for the sqs event bus"))
		}
	case BusNATS:
		if c.Events.NATSURL == "" {
			errs = append(errs, errors.New("NATS_URL is required for the nats event bus"))
		}
	case BusMemory, BusNone:
	default:
		errs = append(errs, fmt.Errorf("EVENT_BUS must be one of sqs, nats, memory, none; got %q", c.Events.Bus))
	}

	// An unset rate parses as zero.
	if (required[RequirePricing] || !c.Pricing.ExchangeRate.IsZero()) && !c.Pricing.ExchangeRate.IsPositive() {
		errs = append(errs, errors.New("EXCHANGE_RATE is required and must be positive"))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logging.Format))
	}
	return errs
}

// parser reads typed values and collects every malformed one.
type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) str(key, defaultValue string) string {
	if value := strings.TrimSpace(p.getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func (p *parser) duration(key string, defaultValue time.Duration) time.Duration {
	raw := p.str(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s must be a positive duration, got %q", key, raw))
		return defaultValue
	}
	return d
}

func (p *parser) boolean(key string, defaultValue bool) bool {
	raw := p.str(key, "")
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s must be a boolean, got %q", key, raw))
		return defaultValue
	}
	return b
}

func (p *parser) decimal(key string) decimal.Decimal {
	raw := p.str(key, "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s must be a decimal number, got %q", key, raw))
		return decimal.Zero
	}
	return d
}
