package handlers

import (
	"net/http"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/handlers/parties"
	"github.com/chris/remittance-transactions/pkg/handlers/respond"
	"github.com/chris/remittance-transactions/pkg/handlers/transactions"
)

// ApiHandler implements the generated server interface by composing the resource handlers.
type ApiHandler struct {
	*transactions.TransactionsHandler
	*parties.PartiesHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(txHandler *transactions.TransactionsHandler, partyHandler *parties.PartiesHandler) *ApiHandler {
	return &ApiHandler{
		TransactionsHandler: txHandler,
		PartiesHandler:      partyHandler,
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// HealthCheck reports that the process is serving requests.
func (h *ApiHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
