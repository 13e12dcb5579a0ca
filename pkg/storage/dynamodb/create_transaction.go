package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
)

// CreateTransaction atomically writes the transaction and a guard item reserving its reference.
// Either write failing its uniqueness condition cancels both.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	slog.Log(ctx, slog.LevelDebug, "creating transaction", "transaction_id", tx.Id, "reference", tx.Reference)

	// Marshal the transaction for the Put operation.
	txAV, err := attributevalue.MarshalMap(toTransactionRecord(tx))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	refAV, err := attributevalue.MarshalMap(referenceRecord{
		RecordType:    recordTypeReference,
		Id:            referenceKeyPrefix + tx.Reference,
		TransactionId: tx.Id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reference guard: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the new transaction record.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Reserve the human-facing reference.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                refAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, fmt.Errorf("transaction %s (reference %s): %w", tx.Id, tx.Reference, storage.ErrConflict)
				}
			}
		}
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	return tx, nil
}
