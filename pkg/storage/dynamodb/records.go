package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/shopspring/decimal"
)

// Items in the transactions table are either transactions or reference guards.
// A guard item (id = "REF#<reference>") makes the human-facing reference unique.
const (
	recordTypeTransaction = "TRANSACTION"
	recordTypeReference   = "REFERENCE"
	referenceKeyPrefix    = "REF#"
)

// number stores a decimal as a DynamoDB number so range filters compare numerically.
type number struct {
	decimal.Decimal
}

func (n number) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: n.Decimal.String()}, nil
}

func (n *number) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return fmt.Errorf("failed to parse number %q: %w", v.Value, err)
		}
		n.Decimal = d
		return nil
	case *types.AttributeValueMemberNULL:
		n.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("expected number attribute, got %T", av)
	}
}

// transactionRecord is the DynamoDB item shape of a transaction. Timestamps are Unix milliseconds.
type transactionRecord struct {
	RecordType      string  `dynamodbav:"record_type"`
	Id              string  `dynamodbav:"id"`
	Reference       string  `dynamodbav:"reference"`
	SenderId        string  `dynamodbav:"sender_id"`
	ReceiverId      string  `dynamodbav:"receiver_id"`
	AmountSource    number  `dynamodbav:"amount_source"`
	AmountConverted number  `dynamodbav:"amount_converted"`
	Fee             number  `dynamodbav:"fee"`
	FeeSource       number  `dynamodbav:"fee_source"`
	ExchangeRate    number  `dynamodbav:"exchange_rate"`
	TotalSource     number  `dynamodbav:"total_source"`
	Status          string  `dynamodbav:"status"`
	Purpose         string  `dynamodbav:"purpose"`
	Notes           *string `dynamodbav:"notes,omitempty"`
	CancelledReason *string `dynamodbav:"cancelled_reason,omitempty"`
	ProcessedAt     *int64  `dynamodbav:"processed_at,omitempty"`
	CompletedAt     *int64  `dynamodbav:"completed_at,omitempty"`
	CancelledAt     *int64  `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt       int64   `dynamodbav:"created_at"`
	UpdatedAt       int64   `dynamodbav:"updated_at"`
	CreatedBy       string  `dynamodbav:"created_by"`
	UpdatedBy       *string `dynamodbav:"updated_by,omitempty"`
	Version         int64   `dynamodbav:"version"`
}

// referenceRecord reserves a transaction reference.
type referenceRecord struct {
	RecordType    string `dynamodbav:"record_type"`
	Id            string `dynamodbav:"id"`
	TransactionId string `dynamodbav:"transaction_id"`
}

// partyRecord is the DynamoDB item shape of a sender or receiver.
type partyRecord struct {
	Id               string `dynamodbav:"id"`
	Kind             string `dynamodbav:"kind"`
	FullName         string `dynamodbav:"full_name"`
	Email            string `dynamodbav:"email,omitempty"`
	Phone            string `dynamodbav:"phone,omitempty"`
	Country          string `dynamodbav:"country"`
	IdDocumentType   string `dynamodbav:"id_document_type,omitempty"`
	IdDocumentNumber string `dynamodbav:"id_document_number,omitempty"`
	PayoutMethod     string `dynamodbav:"payout_method,omitempty"`
	BankName         string `dynamodbav:"bank_name,omitempty"`
	AccountNumber    string `dynamodbav:"account_number,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        int64  `dynamodbav:"created_at"`
	UpdatedAt        int64  `dynamodbav:"updated_at"`
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.UnixMilli()
	return &v
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func fromMillisPtr(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := fromMillis(*v)
	return &t
}

func toTransactionRecord(tx *models.Transaction) transactionRecord {
	return transactionRecord{
		RecordType:      recordTypeTransaction,
		Id:              tx.Id,
		Reference:       tx.Reference,
		SenderId:        tx.SenderId,
		ReceiverId:      tx.ReceiverId,
		AmountSource:    number{tx.AmountSource},
		AmountConverted: number{tx.AmountConverted},
		Fee:             number{tx.Fee},
		FeeSource:       number{tx.FeeSource},
		ExchangeRate:    number{tx.ExchangeRate},
		TotalSource:     number{tx.TotalSource},
		Status:          string(tx.Status),
		Purpose:         tx.Purpose,
		Notes:           tx.Notes,
		CancelledReason: tx.CancelledReason,
		ProcessedAt:     millisPtr(tx.ProcessedAt),
		CompletedAt:     millisPtr(tx.CompletedAt),
		CancelledAt:     millisPtr(tx.CancelledAt),
		CreatedAt:       millis(tx.CreatedAt),
		UpdatedAt:       millis(tx.UpdatedAt),
		CreatedBy:       tx.CreatedBy,
		UpdatedBy:       tx.UpdatedBy,
		Version:         tx.Version,
	}
}

func (r transactionRecord) toModel() models.Transaction {
	return models.Transaction{
		Id:              r.Id,
		Reference:       r.Reference,
		SenderId:        r.SenderId,
		ReceiverId:      r.ReceiverId,
		AmountSource:    r.AmountSource.Decimal,
		AmountConverted: r.AmountConverted.Decimal,
		Fee:             r.Fee.Decimal,
		FeeSource:       r.FeeSource.Decimal,
		ExchangeRate:    r.ExchangeRate.Decimal,
		TotalSource:     r.TotalSource.Decimal,
		Status:          models.TransactionStatus(r.Status),
		Purpose:         r.Purpose,
		Notes:           r.Notes,
		CancelledReason: r.CancelledReason,
		ProcessedAt:     fromMillisPtr(r.ProcessedAt),
		CompletedAt:     fromMillisPtr(r.CompletedAt),
		CancelledAt:     fromMillisPtr(r.CancelledAt),
		CreatedAt:       fromMillis(r.CreatedAt),
		UpdatedAt:       fromMillis(r.UpdatedAt),
		CreatedBy:       r.CreatedBy,
		UpdatedBy:       r.UpdatedBy,
		Version:         r.Version,
	}
}

func toPartyRecord(p *models.Party) partyRecord {
	return partyRecord{
		Id:               p.Id,
		Kind:             string(p.Kind),
		FullName:         p.FullName,
		Email:            p.Email,
		Phone:            p.Phone,
		Country:          p.Country,
		IdDocumentType:   p.IdDocumentType,
		IdDocumentNumber: p.IdDocumentNumber,
		PayoutMethod:     p.PayoutMethod,
		BankName:         p.BankName,
		AccountNumber:    p.AccountNumber,
		Status:           string(p.Status),
		CreatedAt:        millis(p.CreatedAt),
		UpdatedAt:        millis(p.UpdatedAt),
	}
}

func (r partyRecord) toModel() models.Party {
	return models.Party{
		Id:               r.Id,
		Kind:             models.PartyKind(r.Kind),
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		Country:          r.Country,
		IdDocumentType:   r.IdDocumentType,
		IdDocumentNumber: r.IdDocumentNumber,
		PayoutMethod:     r.PayoutMethod,
		BankName:         r.BankName,
		AccountNumber:    r.AccountNumber,
		Status:           models.PartyStatus(r.Status),
		CreatedAt:        fromMillis(r.CreatedAt),
		UpdatedAt:        fromMillis(r.UpdatedAt),
	}
}
