package parties

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/handlers/respond"
	"github.com/chris/remittance-transactions/pkg/mapping"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/google/uuid"
)

// Senders start unverified until KYC clears them; receivers are payout destinations and start active.
const (
	defaultSenderStatus   = models.PartyPendingVerification
	defaultReceiverStatus = models.PartyActive
)

// PartiesHandler holds the dependencies for sender and receiver handlers.
type PartiesHandler struct {
	Store  storage.PartyStore
	Logger *slog.Logger
	now    func() time.Time
}

// NewPartiesHandler creates a new PartiesHandler.
func NewPartiesHandler(store storage.PartyStore, logger *slog.Logger) *PartiesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PartiesHandler{Store: store, Logger: logger, now: time.Now}
}

// CreateSender registers a new sender.
func (h *PartiesHandler) CreateSender(w http.ResponseWriter, r *http.Request) {
	var in api.NewSender
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, err)
		return
	}
	h.create(w, r, mapping.ToDomainNewSender(&in), defaultSenderStatus)
}

// CreateReceiver registers a new receiver.
func (h *PartiesHandler) CreateReceiver(w http.ResponseWriter, r *http.Request) {
	var in api.NewReceiver
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, err)
		return
	}
	h.create(w, r, mapping.ToDomainNewReceiver(&in), defaultReceiverStatus)
}

// ListSenders returns every sender, newest first.
func (h *PartiesHandler) ListSenders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.SENDER)
}

// ListReceivers returns every receiver, newest first.
func (h *PartiesHandler) ListReceivers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.RECEIVER)
}

// GetSenderById returns one sender.
func (h *PartiesHandler) GetSenderById(w http.ResponseWriter, r *http.Request, id string) {
	h.get(w, r, models.SENDER, id)
}

// GetReceiverById returns one receiver.
func (h *PartiesHandler) GetReceiverById(w http.ResponseWriter, r *http.Request, id string) {
	h.get(w, r, models.RECEIVER, id)
}

// UpdateSenderStatus changes a sender's eligibility.
func (h *PartiesHandler) UpdateSenderStatus(w http.ResponseWriter, r *http.Request, id string) {
	h.updateStatus(w, r, models.SENDER, id)
}

// UpdateReceiverStatus changes a receiver's eligibility.
func (h *PartiesHandler) UpdateReceiverStatus(w http.ResponseWriter, r *http.Request, id string) {
	h.updateStatus(w, r, models.RECEIVER, id)
}

func (h *PartiesHandler) create(w http.ResponseWriter, r *http.Request, party *models.Party, status models.PartyStatus) {
	if details := validateParty(party); len(details) > 0 {
		respond.Fail(w, http.StatusBadRequest, "invalid "+string(party.Kind), details)
		return
	}

	now := h.now().UTC().Truncate(time.Millisecond)
	party.Id = uuid.NewString()
	party.Status = status
	party.CreatedAt = now
	party.UpdatedAt = now

	created, err := h.Store.CreateParty(r.Context(), party)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, string(party.Kind)+" created", mapping.ToApiParty(created))
}

func (h *PartiesHandler) list(w http.ResponseWriter, r *http.Request, kind models.PartyKind) {
	parties, err := h.Store.ListParties(r.Context(), kind)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	sort.Slice(parties, func(i, j int) bool {
		return parties[i].CreatedAt.After(parties[j].CreatedAt)
	})

	respond.JSON(w, http.StatusOK, string(kind)+"s retrieved", mapping.ToApiParties(parties))
}

func (h *PartiesHandler) get(w http.ResponseWriter, r *http.Request, kind models.PartyKind, id string) {
	party, err := h.Store.GetParty(r.Context(), kind, id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, string(kind)+" retrieved", mapping.ToApiParty(party))
}

func (h *PartiesHandler) updateStatus(w http.ResponseWriter, r *http.Request, kind models.PartyKind, id string) {
	var update api.PartyStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respond.BadRequest(w, err)
		return
	}

	status := models.PartyStatus(update.Status)
	if !status.Valid() {
		respond.Fail(w, http.StatusBadRequest, "invalid "+string(kind)+" status", map[string]string{"status": "unknown status " + string(status)})
		return
	}

	party, err := h.Store.UpdatePartyStatus(r.Context(), kind, id, status)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	h.Logger.InfoContext(r.Context(), "party status changed", "kind", kind, "party_id", id, "status", status)
	respond.JSON(w, http.StatusOK, string(kind)+" status updated", mapping.ToApiParty(party))
}

func validateParty(p *models.Party) map[string]string {
	details := map[string]string{}
	if p.FullName == "" {
		details["fullName"] = "is required"
	}
	if len(p.Country) != 2 {
		details["country"] = "must be a two-letter country code"
	}
	if p.Kind == models.RECEIVER && p.PayoutMethod == "" {
		details["payoutMethod"] = "is required"
	}
	return details
}
