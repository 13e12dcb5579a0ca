package storage

import (
	"context"

	"github.com/chris/remittance-transactions/pkg/models"
)

// PartyReader exposes the lookups the lifecycle manager needs for eligibility checks.
type PartyReader interface {
	// GetParty retrieves a sender or receiver by ID. Returns ErrNotFound when absent.
	GetParty(ctx context.Context, kind models.PartyKind, id string) (*models.Party, error)
}

// PartyStore defines the interface for managing senders and receivers.
type PartyStore interface {
	PartyReader

	// CreateParty creates a new sender or receiver. Returns ErrConflict if the ID is taken.
	CreateParty(ctx context.Context, party *models.Party) (*models.Party, error)

	// ListParties retrieves all parties of the given kind.
	ListParties(ctx context.Context, kind models.PartyKind) ([]models.Party, error)

	// UpdatePartyStatus changes a party's eligibility status. Returns ErrNotFound when absent.
	UpdatePartyStatus(ctx context.Context, kind models.PartyKind, id string, status models.PartyStatus) (*models.Party, error)
}
