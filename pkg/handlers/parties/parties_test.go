package parties_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/handlers/parties"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/chris/remittance-transactions/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func jsonBody(v any) *bytes.Reader {
	body, _ := json.Marshal(v)
	return bytes.NewReader(body)
}

func TestCreateSender(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateParty", mock.Anything, mock.MatchedBy(func(p *models.Party) bool {
			return p.Kind == models.SENDER && p.Id != "" && p.Country == "US" &&
				p.Status == models.PartyPendingVerification && !p.CreatedAt.IsZero()
		})).Return(func(_ context.Context, p *models.Party) *models.Party { return p }, nil)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPost, "/senders", jsonBody(api.NewSender{FullName: "Jane Doe", Country: "us"}))
		rr := httptest.NewRecorder()

		// Act
		h.CreateSender(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var out api.Party
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		assert.Equal(t, api.PartyKindSender, out.Kind)
		assert.Equal(t, api.PartyStatusPendingVerification, out.Status)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPost, "/senders", jsonBody(api.NewSender{Country: "USA"}))
		rr := httptest.NewRecorder()

		h.CreateSender(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decode(t, rr)
		assert.Contains(t, env.Errors, "fullName")
		assert.Contains(t, env.Errors, "country")
		mockStorage.AssertNotCalled(t, "CreateParty", mock.Anything, mock.Anything)
	})
}

func TestCreateReceiver(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateParty", mock.Anything, mock.MatchedBy(func(p *models.Party) bool {
			return p.Kind == models.RECEIVER && p.Status == models.PartyActive && p.PayoutMethod == "bank_transfer"
		})).Return(func(_ context.Context, p *models.Party) *models.Party { return p }, nil)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPost, "/receivers", jsonBody(api.NewReceiver{
			FullName:     "Nguyen Van A",
			Country:      "VN",
			PayoutMethod: "bank_transfer",
		}))
		rr := httptest.NewRecorder()

		h.CreateReceiver(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Missing payout method", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPost, "/receivers", jsonBody(api.NewReceiver{FullName: "Nguyen Van A", Country: "VN"}))
		rr := httptest.NewRecorder()

		h.CreateReceiver(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "is required", decode(t, rr).Errors["payoutMethod"])
	})

	t.Run("Conflict", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateParty", mock.Anything, mock.Anything).Return(nil, storage.ErrConflict)
		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPost, "/receivers", jsonBody(api.NewReceiver{FullName: "A", Country: "VN", PayoutMethod: "cash_pickup"}))
		rr := httptest.NewRecorder()

		h.CreateReceiver(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestListSenders(t *testing.T) {
	t.Run("Newest first", func(t *testing.T) {
		// Arrange
		older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListParties", mock.Anything, models.SENDER).Return([]models.Party{
			{Id: "old", Kind: models.SENDER, CreatedAt: older},
			{Id: "new", Kind: models.SENDER, CreatedAt: older.Add(time.Hour)},
		}, nil)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodGet, "/senders", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListSenders(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var out []api.Party
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		require.Len(t, out, 2)
		assert.Equal(t, "new", out[0].Id)
		mockStorage.AssertExpectations(t)
	})
}

func TestGetReceiverById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetParty", mock.Anything, models.RECEIVER, "r-1").
			Return(&models.Party{Id: "r-1", Kind: models.RECEIVER, Status: models.PartyActive}, nil)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodGet, "/receivers/r-1", nil)
		rr := httptest.NewRecorder()

		h.GetReceiverById(rr, req, "r-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetParty", mock.Anything, models.RECEIVER, "missing").Return(nil, storage.ErrNotFound)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodGet, "/receivers/missing", nil)
		rr := httptest.NewRecorder()

		h.GetReceiverById(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateSenderStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("UpdatePartyStatus", mock.Anything, models.SENDER, "s-1", models.PartyActive).
			Return(&models.Party{Id: "s-1", Kind: models.SENDER, Status: models.PartyActive}, nil)

		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPatch, "/senders/s-1/status", jsonBody(api.PartyStatusUpdate{Status: api.PartyStatusActive}))
		rr := httptest.NewRecorder()

		h.UpdateSenderStatus(rr, req, "s-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown status", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := parties.NewPartiesHandler(mockStorage, nil)

		req := httptest.NewRequest(http.MethodPatch, "/senders/s-1/status", jsonBody(map[string]string{"status": "banned"}))
		rr := httptest.NewRecorder()

		h.UpdateSenderStatus(rr, req, "s-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "UpdatePartyStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
