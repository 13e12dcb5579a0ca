package dynamodb

import (
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func sampleTransaction() *models.Transaction {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &models.Transaction{
		Id:              uuid.New().String(),
		Reference:       "RMT-20260314-AB12CD34",
		SenderId:        "sender-1",
		ReceiverId:      "receiver-1",
		AmountSource:    decimal.RequireFromString("50000"),
		AmountConverted: decimal.RequireFromString("46000"),
		Fee:             decimal.RequireFromString("500"),
		FeeSource:       decimal.RequireFromString("543.48"),
		ExchangeRate:    decimal.RequireFromString("0.92"),
		TotalSource:     decimal.RequireFromString("50543.48"),
		Status:          models.PENDING,
		Purpose:         "family support",
		CreatedAt:       created,
		UpdatedAt:       created,
		CreatedBy:       "admin-1",
		Version:         1,
	}
}
