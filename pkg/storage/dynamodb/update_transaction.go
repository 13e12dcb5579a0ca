package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
)

// UpdateTransaction replaces the stored transaction if its version still equals expectedVersion.
// Amounts are carried over unchanged from the caller's copy, which was read from this table.
func (s *Store) UpdateTransaction(ctx context.Context, tx *models.Transaction, expectedVersion int64) error {
	txAV, err := attributevalue.MarshalMap(toTransactionRecord(tx))
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                txAV,
		ConditionExpression: aws.String("attribute_exists(id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if condCheckFailed.Item == nil {
				return fmt.Errorf("transaction with ID %s: %w", tx.Id, storage.ErrNotFound)
			}
			return fmt.Errorf("transaction with ID %s at version %d: %w", tx.Id, expectedVersion, storage.ErrVersionConflict)
		}
		return fmt.Errorf("failed to update transaction in DynamoDB: %w", err)
	}

	return nil
}
