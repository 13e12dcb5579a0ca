// Package respond writes the JSON envelope shared by every API endpoint.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/storage"
)

// JSON writes a successful envelope carrying data.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, api.ApiResponse{Success: true, Message: message, Data: data})
}

// Fail writes a failed envelope with optional per-field details.
func Fail(w http.ResponseWriter, status int, message string, details map[string]string) {
	resp := api.ApiResponse{Success: false, Message: message}
	if len(details) > 0 {
		resp.Errors = &details
	}
	write(w, status, resp)
}

// BadRequest reports an undecodable request body.
func BadRequest(w http.ResponseWriter, err error) {
	Fail(w, http.StatusBadRequest, "invalid request body", map[string]string{"body": err.Error()})
}

// Error maps err onto a failed envelope. Lifecycle errors keep their kind and details;
// storage sentinels map to 404 and 409. Anything else is logged and reported generically.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var lerr *lifecycle.Error
	switch {
	case errors.As(err, &lerr) && lerr.Kind != lifecycle.KindInternal:
		Fail(w, lerr.HTTPStatus(), lerr.Message, lerr.Details)
		return
	case errors.Is(err, storage.ErrNotFound):
		Fail(w, http.StatusNotFound, "record not found", nil)
		return
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrVersionConflict):
		Fail(w, http.StatusConflict, err.Error(), nil)
		return
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	Fail(w, http.StatusInternalServerError, "internal server error", nil)
}

func write(w http.ResponseWriter, status int, resp api.ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
