// Package mapping converts between the generated API types and the domain models.
package mapping

import (
	"strings"
	"time"

	"github.com/chris/remittance-transactions/pkg/api"
	"github.com/chris/remittance-transactions/pkg/lifecycle"
	"github.com/chris/remittance-transactions/pkg/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:              tx.Id,
		Reference:       tx.Reference,
		SenderId:        tx.SenderId,
		ReceiverId:      tx.ReceiverId,
		AmountSource:    tx.AmountSource,
		AmountConverted: tx.AmountConverted,
		Fee:             tx.Fee,
		FeeSource:       tx.FeeSource,
		ExchangeRate:    tx.ExchangeRate,
		TotalSource:     tx.TotalSource,
		Status:          api.TransactionStatus(tx.Status),
		Purpose:         tx.Purpose,
		Notes:           tx.Notes,
		CancelledReason: tx.CancelledReason,
		ProcessedAt:     tx.ProcessedAt,
		CompletedAt:     tx.CompletedAt,
		CancelledAt:     tx.CancelledAt,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
		CreatedBy:       tx.CreatedBy,
		UpdatedBy:       tx.UpdatedBy,
		Version:         tx.Version,
	}
}

// ToApiTransactionPage converts a page of domain transactions.
func ToApiTransactionPage(page *models.TransactionPage) *api.TransactionPage {
	items := make([]api.Transaction, len(page.Items))
	for i := range page.Items {
		items[i] = *ToApiTransaction(&page.Items[i])
	}
	return &api.TransactionPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}

// ToApiTransactionStats converts aggregated stats.
func ToApiTransactionStats(stats *models.TransactionStats) *api.TransactionStats {
	return &api.TransactionStats{
		TotalAmount:       stats.TotalAmount,
		TotalTransactions: stats.TotalTransactions,
		SuccessRate:       stats.SuccessRate,
		AverageAmount:     stats.AverageAmount,
	}
}

// ToDomainCreateInput converts an API NewTransaction into lifecycle input on behalf of actor.
func ToDomainCreateInput(newTx *api.NewTransaction, actor string) lifecycle.CreateInput {
	return lifecycle.CreateInput{
		SenderID:     strings.TrimSpace(newTx.SenderId),
		ReceiverID:   strings.TrimSpace(newTx.ReceiverId),
		AmountSource: newTx.AmountSource,
		Purpose:      strings.TrimSpace(newTx.Purpose),
		Notes:        newTx.Notes,
		Actor:        actor,
	}
}

// ToDomainTransactionFilter converts list query parameters into a domain filter.
// Amount bounds that are not decimals are reported in the returned map, keyed by parameter name.
func ToDomainTransactionFilter(params api.ListTransactionsParams) (models.TransactionFilter, map[string]string) {
	details := map[string]string{}
	filter := models.TransactionFilter{
		Page:  deref(params.Page),
		Limit: deref(params.Limit),
	}
	if params.Status != nil {
		filter.Status = models.TransactionStatus(*params.Status)
	}
	if params.SenderId != nil {
		filter.SenderId = strings.TrimSpace(*params.SenderId)
	}
	if params.ReceiverId != nil {
		filter.ReceiverId = strings.TrimSpace(*params.ReceiverId)
	}
	filter.From, filter.To = DateRange(params.StartDate, params.EndDate)

	if params.MinAmount != nil {
		if d, err := decimal.NewFromString(*params.MinAmount); err != nil {
			details["minAmount"] = "must be a decimal number"
		} else {
			filter.MinAmount = &d
		}
	}
	if params.MaxAmount != nil {
		if d, err := decimal.NewFromString(*params.MaxAmount); err != nil {
			details["maxAmount"] = "must be a decimal number"
		} else {
			filter.MaxAmount = &d
		}
	}
	return filter, details
}

// DateRange turns calendar dates into an inclusive UTC time range:
// start is the first instant of its day and end the last instant of its day.
func DateRange(start, end *openapi_types.Date) (from, to *time.Time) {
	if start != nil {
		t := dayStart(start.Time)
		from = &t
	}
	if end != nil {
		t := dayStart(end.Time).Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to
}

// ToApiParty converts a domain Party model to an API Party model.
func ToApiParty(p *models.Party) *api.Party {
	return &api.Party{
		Id:               p.Id,
		Kind:             api.PartyKind(p.Kind),
		FullName:         p.FullName,
		Email:            optional(p.Email),
		Phone:            optional(p.Phone),
		Country:          p.Country,
		IdDocumentType:   optional(p.IdDocumentType),
		IdDocumentNumber: optional(p.IdDocumentNumber),
		PayoutMethod:     optional(p.PayoutMethod),
		BankName:         optional(p.BankName),
		AccountNumber:    optional(p.AccountNumber),
		Status:           api.PartyStatus(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToApiParties converts a list of domain parties.
func ToApiParties(parties []models.Party) []api.Party {
	out := make([]api.Party, len(parties))
	for i := range parties {
		out[i] = *ToApiParty(&parties[i])
	}
	return out
}

// ToDomainNewSender converts an API NewSender model to a domain Party.
// Identity, status and timestamps are assigned by the caller.
func ToDomainNewSender(s *api.NewSender) *models.Party {
	return &models.Party{
		Kind:             models.SENDER,
		FullName:         strings.TrimSpace(s.FullName),
		Email:            deref(s.Email),
		Phone:            deref(s.Phone),
		Country:          strings.ToUpper(strings.TrimSpace(s.Country)),
		IdDocumentType:   deref(s.IdDocumentType),
		IdDocumentNumber: deref(s.IdDocumentNumber),
	}
}

// ToDomainNewReceiver converts an API NewReceiver model to a domain Party.
func ToDomainNewReceiver(r *api.NewReceiver) *models.Party {
	return &models.Party{
		Kind:          models.RECEIVER,
		FullName:      strings.TrimSpace(r.FullName),
		Email:         deref(r.Email),
		Phone:         deref(r.Phone),
		Country:       strings.ToUpper(strings.TrimSpace(r.Country)),
		PayoutMethod:  strings.TrimSpace(r.PayoutMethod),
		BankName:      deref(r.BankName),
		AccountNumber: deref(r.AccountNumber),
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
