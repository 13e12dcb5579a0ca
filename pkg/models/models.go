package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	PENDING    TransactionStatus = "pending"
	PROCESSING TransactionStatus = "processing"
	COMPLETED  TransactionStatus = "completed"
	FAILED     TransactionStatus = "failed"
	CANCELLED  TransactionStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case PENDING, PROCESSING, COMPLETED, FAILED, CANCELLED:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are expected from s.
func (s TransactionStatus) Terminal() bool {
	return s == COMPLETED || s == FAILED || s == CANCELLED
}

// Transaction represents the internal domain model for a remittance transaction.
// Amounts are fixed at creation; only status, notes, milestones and audit fields change afterwards.
type Transaction struct {
	Id              string
	Reference       string
	SenderId        string
	ReceiverId      string
	AmountSource    decimal.Decimal
	AmountConverted decimal.Decimal
	Fee             decimal.Decimal
	FeeSource       decimal.Decimal
	ExchangeRate    decimal.Decimal
	TotalSource     decimal.Decimal
	Status          TransactionStatus
	Purpose         string
	Notes           *string
	CancelledReason *string
	ProcessedAt     *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
	UpdatedBy       *string
	Version         int64
}

// PartyKind distinguishes senders from receivers.
type PartyKind string

const (
	SENDER   PartyKind = "sender"
	RECEIVER PartyKind = "receiver"
)

// PartyStatus defines the eligibility states of a sender or receiver.
type PartyStatus string

const (
	PartyActive              PartyStatus = "active"
	PartyInactive            PartyStatus = "inactive"
	PartyPendingVerification PartyStatus = "pending_verification"
)

// Valid reports whether s is one of the known party statuses.
func (s PartyStatus) Valid() bool {
	return s == PartyActive || s == PartyInactive || s == PartyPendingVerification
}

// Party is a sender (origin identity profile) or a receiver (destination payout profile).
type Party struct {
	Id       string
	Kind     PartyKind
	FullName string
	Email    string
	Phone    string
	Country  string

	// Sender profile.
	IdDocumentType   string
	IdDocumentNumber string

	// Receiver profile.
	PayoutMethod  string
	BankName      string
	AccountNumber string

	Status    PartyStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the party may take part in a new transaction.
func (p *Party) IsActive() bool {
	return p.Status == PartyActive
}

// TransactionFilter narrows a transaction listing. Zero values mean "no constraint".
type TransactionFilter struct {
	Status     TransactionStatus
	SenderId   string
	ReceiverId string
	From       *time.Time
	To         *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Page       int
	Limit      int
}

// Matches reports whether tx satisfies every constraint of the filter.
// Pagination fields are ignored.
func (f TransactionFilter) Matches(tx *Transaction) bool {
	if f.Status != "" && tx.Status != f.Status {
		return false
	}
	if f.SenderId != "" && tx.SenderId != f.SenderId {
		return false
	}
	if f.ReceiverId != "" && tx.ReceiverId != f.ReceiverId {
		return false
	}
	if f.From != nil && tx.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && tx.CreatedAt.After(*f.To) {
		return false
	}
	if f.MinAmount != nil && tx.AmountSource.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && tx.AmountSource.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// Offset returns the number of rows to skip for the filter's page.
func (f TransactionFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// TransactionPage is one page of a filtered, newest-first listing.
type TransactionPage struct {
	Items []Transaction
	Total int
	Page  int
	Limit int
}

// TransactionStats aggregates transactions over a date range.
type TransactionStats struct {
	TotalAmount       decimal.Decimal
	TotalTransactions int
	SuccessRate       decimal.Decimal
	AverageAmount     decimal.Decimal
}

// Summarize computes stats over an already filtered set of transactions.
func Summarize(txs []Transaction) TransactionStats {
	total := decimal.Zero
	completed := 0
	for _, tx := range txs {
		total = total.Add(tx.AmountSource)
		if tx.Status == COMPLETED {
			completed++
		}
	}
	return NewTransactionStats(total, len(txs), completed)
}

// NewTransactionStats derives the success rate (percent) and average amount from raw aggregates.
func NewTransactionStats(total decimal.Decimal, count, completed int) TransactionStats {
	stats := TransactionStats{
		TotalAmount:       total,
		TotalTransactions: count,
		SuccessRate:       decimal.Zero,
		AverageAmount:     decimal.Zero,
	}
	if count == 0 {
		return stats
	}
	n := decimal.NewFromInt(int64(count))
	stats.SuccessRate = decimal.NewFromInt(int64(completed)).Mul(decimal.NewFromInt(100)).Div(n).Round(2)
	stats.AverageAmount = total.Div(n).Round(2)
	return stats
}
