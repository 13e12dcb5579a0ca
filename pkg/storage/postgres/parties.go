package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
)

const partyColumns = `id, kind, full_name, email, phone, country, id_document_type, id_document_number,
	payout_method, bank_name, account_number, status, created_at, updated_at`

func scanParty(row scanner) (*models.Party, error) {
	var p models.Party
	var kind, status string
	err := row.Scan(
		&p.Id, &kind, &p.FullName, &p.Email, &p.Phone, &p.Country,
		&p.IdDocumentType, &p.IdDocumentNumber,
		&p.PayoutMethod, &p.BankName, &p.AccountNumber,
		&status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Kind = models.PartyKind(kind)
	p.Status = models.PartyStatus(status)
	return &p, nil
}

// CreateParty inserts a sender or receiver.
func (s *Store) CreateParty(ctx context.Context, party *models.Party) (*models.Party, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parties (`+partyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		party.Id, string(party.Kind), party.FullName, party.Email, party.Phone, party.Country,
		party.IdDocumentType, party.IdDocumentNumber,
		party.PayoutMethod, party.BankName, party.AccountNumber,
		string(party.Status), party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		err = classify(err, fmt.Sprintf("%s with ID %s", party.Kind, party.Id))
		return nil, fmt.Errorf("failed to insert party: %w", err)
	}
	return party, nil
}

// GetParty retrieves a party of the given kind.
func (s *Store) GetParty(ctx context.Context, kind models.PartyKind, id string) (*models.Party, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+partyColumns+` FROM parties WHERE id = $1 AND kind = $2`, id, string(kind))
	party, err := scanParty(row)
	if err != nil {
		err = classify(err, fmt.Sprintf("%s with ID %s", kind, id))
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

// ListParties returns every party of the given kind, newest first.
func (s *Store) ListParties(ctx context.Context, kind models.PartyKind) ([]models.Party, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE kind = $1 ORDER BY created_at DESC`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}
	return parties, nil
}

// UpdatePartyStatus sets a party's status and returns the updated row.
func (s *Store) UpdatePartyStatus(ctx context.Context, kind models.PartyKind, id string, status models.PartyStatus) (*models.Party, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE parties SET status = $1, updated_at = $2
		WHERE id = $3 AND kind = $4
		RETURNING `+partyColumns,
		string(status), time.Now().UTC(), id, string(kind),
	)
	party, err := scanParty(row)
	if err != nil {
		err = classify(err, fmt.Sprintf("%s with ID %s", kind, id))
		return nil, fmt.Errorf("failed to update party status: %w", err)
	}
	return party, nil
}
