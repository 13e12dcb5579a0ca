package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
)

// CreateParty creates a new sender or receiver record in DynamoDB.
func (s *Store) CreateParty(ctx context.Context, party *models.Party) (*models.Party, error) {
	partyAV, err := attributevalue.MarshalMap(toPartyRecord(party))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal party: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.PartiesTableName),
		Item:                partyAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing parties.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("%s with ID %s: %w", party.Kind, party.Id, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create party in DynamoDB: %w", err)
	}

	return party, nil
}

// GetParty retrieves a sender or receiver by ID. A record of the other kind counts as not found.
func (s *Store) GetParty(ctx context.Context, kind models.PartyKind, id string) (*models.Party, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal party ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PartiesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get party from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%s with ID %s: %w", kind, id, storage.ErrNotFound)
	}

	var rec partyRecord
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}
	if rec.Kind != string(kind) {
		return nil, fmt.Errorf("%s with ID %s: %w", kind, id, storage.ErrNotFound)
	}

	party := rec.toModel()
	return &party, nil
}

// ListParties retrieves all parties of one kind.
func (s *Store) ListParties(ctx context.Context, kind models.PartyKind) ([]models.Party, error) {
	var parties []models.Party
	var startKey map[string]types.AttributeValue
	for {
		input := &dynamodb.ScanInput{
			TableName:        aws.String(s.PartiesTableName),
			FilterExpression: aws.String("kind = :kind"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":kind": &types.AttributeValueMemberS{Value: string(kind)},
			},
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parties table: %w", err)
		}

		var records []partyRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parties: %w", err)
		}
		for _, rec := range records {
			parties = append(parties, rec.toModel())
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return parties, nil
}

// UpdatePartyStatus changes a party's status and returns the updated record.
func (s *Store) UpdatePartyStatus(ctx context.Context, kind models.PartyKind, id string, status models.PartyStatus) (*models.Party, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PartiesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", millis(time.Now()))},
			":kind":   &types.AttributeValueMemberS{Value: string(kind)},
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("%s with ID %s: %w", kind, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update party status in DynamoDB: %w", err)
	}

	var rec partyRecord
	if err := attributevalue.UnmarshalMap(result.Attributes, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}

	party := rec.toModel()
	return &party, nil
}
