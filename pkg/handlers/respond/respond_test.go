package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	JSON(rr, http.StatusCreated, "created", map[string]string{"id": "tx-1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	env := decode(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "created", env.Message)
	assert.JSONEq(t, `{"id":"tx-1"}`, string(env.Data))
	assert.Nil(t, env.Errors)
}

func TestError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		details map[string]string
	}{
		{
			name:    "Validation",
			err:     &lifecycle.Error{Kind: lifecycle.KindValidation, Message: "invalid transaction", Details: map[string]string{"purpose": "is required"}},
			status:  http.StatusBadRequest,
			message: "invalid transaction",
			details: map[string]string{"purpose": "is required"},
		},
		{
			name:    "Lifecycle not found",
			err:     &lifecycle.Error{Kind: lifecycle.KindNotFound, Message: "transaction not found"},
			status:  http.StatusNotFound,
			message: "transaction not found",
		},
		{
			name:    "Lifecycle conflict",
			err:     &lifecycle.Error{Kind: lifecycle.KindConflict, Message: "transaction was modified concurrently"},
			status:  http.StatusConflict,
			message: "transaction was modified concurrently",
		},
		{
			name:    "Storage not found",
			err:     fmt.Errorf("get party: %w", storage.ErrNotFound),
			status:  http.StatusNotFound,
			message: "record not found",
		},
		{
			name:    "Storage conflict",
			err:     storage.ErrConflict,
			status:  http.StatusConflict,
			message: storage.ErrConflict.Error(),
		},
		{
			name:    "Lifecycle internal hides cause",
			err:     &lifecycle.Error{Kind: lifecycle.KindInternal, Message: "failed to save", Err: errors.New("connection reset")},
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
		{
			name:    "Unknown error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			Error(rr, req, logger, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			env := decode(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)
			assert.Equal(t, tc.details, env.Errors)
		})
	}
}

func TestBadRequest(t *testing.T) {
	rr := httptest.NewRecorder()

	BadRequest(rr, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, "unexpected EOF", env.Errors["body"])
}
