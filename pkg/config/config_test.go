package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

var apiRequirements = []Requirement{RequireStore, RequirePricing}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DYNAMODB_TRANSACTIONS_TABLE_NAME": "transactions",
		"DYNAMODB_PARTIES_TABLE_NAME":      "parties",
		"EXCHANGE_RATE":                    "133.25",
	}), apiRequirements...)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreDynamoDB, cfg.Storage.Driver)
	assert.Equal(t, BusNone, cfg.Events.Bus)
	assert.Equal(t, "transaction-events", cfg.Events.Topic)
	assert.Equal(t, 5*time.Second, cfg.Events.PublishTimeout)
	assert.Equal(t, 30*time.Second, cfg.Events.HandlerTimeout)
	assert.True(t, cfg.Lifecycle.StrictTransitions)
	assert.Equal(t, "system", cfg.Lifecycle.DefaultActor)
	assert.Equal(t, "133.25", cfg.Pricing.ExchangeRate.String())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"HTTP_PORT":                 "9090",
		"STORE_DRIVER":              "Postgres",
		"DATABASE_URL":              "postgres://localhost/remit?sslmode=disable",
		"EVENT_BUS":                 "nats",
		"NATS_URL":                  "nats://nats:4222",
		"EVENT_PUBLISH_TIMEOUT":     "2s",
		"EXCHANGE_RATE":             "0.92",
		"SOURCE_CURRENCY":           "usd",
		"STRICT_STATUS_TRANSITIONS": "false",
		"DEFAULT_ACTOR":             "dashboard",
		"LOG_FORMAT":                "TEXT",
	}), apiRequirements...)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorePostgres, cfg.Storage.Driver)
	assert.Equal(t, BusNATS, cfg.Events.Bus)
	assert.Equal(t, "nats://nats:4222", cfg.Events.NATSURL)
	assert.Equal(t, 2*time.Second, cfg.Events.PublishTimeout)
	assert.Equal(t, "0.92", cfg.Pricing.ExchangeRate.String())
	assert.Equal(t, "USD", cfg.Pricing.SourceCurrency)
	assert.False(t, cfg.Lifecycle.StrictTransitions)
	assert.Equal(t, "dashboard", cfg.Lifecycle.DefaultActor)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		message string
	}{
		{
			name:    "Missing dynamodb tables",
			env:     map[string]string{"EXCHANGE_RATE": "0.92"},
			message: "DYNAMODB_TRANSACTIONS_TABLE_NAME",
		},
		{
			name:    "Missing exchange rate",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "x"},
			message: "EXCHANGE_RATE is required",
		},
		{
			name:    "Missing database url",
			env:     map[string]string{"STORE_DRIVER": "postgres"},
			message: "DATABASE_URL",
		},
		{
			name:    "Unknown store",
			env:     map[string]string{"STORE_DRIVER": "mongo"},
			message: "STORE_DRIVER",
		},
		{
			name:    "Missing queue url",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "x", "EVENT_BUS": "sqs"},
			message: "SQS_QUEUE_URL",
		},
		{
			name:    "Bad duration",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "x", "EVENT_PUBLISH_TIMEOUT": "soon"},
			message: "EVENT_PUBLISH_TIMEOUT",
		},
		{
			name:    "Non-positive rate",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "x", "EXCHANGE_RATE": "0"},
			message: "EXCHANGE_RATE",
		},
		{
			name:    "Bad boolean",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "x", "STRICT_STATUS_TRANSITIONS": "maybe"},
			message: "STRICT_STATUS_TRANSITIONS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEnv(env(tc.env), apiRequirements...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestFromEnv_Requirements(t *testing.T) {
	t.Run("Consumer needs neither store nor rate", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{
			"WEBSOCKET_API_ENDPOINT":          "https://example.execute-api.us-east-1.amazonaws.com/prod",
			"DYNAMODB_CONNECTIONS_TABLE_NAME": "connections",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.Pricing.ExchangeRate.IsZero())
		assert.Equal(t, "connections", cfg.Storage.ConnectionsTable)
	})

	t.Run("Unknown store driver is ignored when no store is needed", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"STORE_DRIVER": "mongo"}))
		assert.NoError(t, err)
	})

	t.Run("Malformed values are still rejected", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"EXCHANGE_RATE": "-1", "EVENT_BUS": "kafka"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EXCHANGE_RATE")
		assert.Contains(t, err.Error(), "EVENT_BUS")
	})

	t.Run("Connections table", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{}), RequireConnections)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DYNAMODB_CONNECTIONS_TABLE_NAME")
	})
}
