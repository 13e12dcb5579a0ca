package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ActorFromContext(r.Context())
	})

	t.Run("From header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		req.Header.Set(ActorHeader, " ops-7 ")
		Actor("dashboard")(next).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "ops-7", seen)
	})

	t.Run("Configured default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		Actor("dashboard")(next).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "dashboard", seen)
	})

	t.Run("Built-in default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		Actor("")(next).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, DefaultActor, seen)
	})
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Actor("dashboard")(NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request rejected", line["msg"])
	assert.Equal(t, "WARN", line["level"])

	request := line["request"].(map[string]any)
	assert.Equal(t, "/transactions/missing", request["path"])
	assert.Equal(t, "dashboard", request["actor"])

	response := line["response"].(map[string]any)
	assert.Equal(t, float64(http.StatusNotFound), response["status"])
}
