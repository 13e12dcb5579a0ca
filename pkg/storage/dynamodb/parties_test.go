package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
	"github.com/chris/remittance-transactions/pkg/storage"
	"github.com/chris/remittance-transactions/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleSender() *models.Party {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return &models.Party{
		Id:               "sender-1",
		Kind:             models.SENDER,
		FullName:         "Aiko Tanaka",
		Country:          "JP",
		IdDocumentType:   "residence_card",
		IdDocumentNumber: "RC1234567",
		Status:           models.PartyActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestCreateParty(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		party, err := store.CreateParty(context.Background(), sampleSender())

		require.NoError(t, err)
		assert.Equal(t, "sender-1", party.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CreateParty(context.Background(), sampleSender())

		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestGetParty(t *testing.T) {
	senderAV, err := attributevalue.MarshalMap(toPartyRecord(sampleSender()))
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: senderAV}, nil)

		party, err := store.GetParty(context.Background(), models.SENDER, "sender-1")

		require.NoError(t, err)
		assert.True(t, party.IsActive())
		assert.Equal(t, "RC1234567", party.IdDocumentNumber)
	})

	t.Run("Wrong Kind", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: senderAV}, nil)

		_, err := store.GetParty(context.Background(), models.RECEIVER, "sender-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := store.GetParty(context.Background(), models.SENDER, "sender-1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUpdatePartyStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		updated := sampleSender()
		updated.Status = models.PartyInactive
		updatedAV, _ := attributevalue.MarshalMap(toPartyRecord(updated))
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil)

		party, err := store.UpdatePartyStatus(context.Background(), models.SENDER, "sender-1", models.PartyInactive)

		require.NoError(t, err)
		assert.False(t, party.IsActive())
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PartiesTableName: "parties"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.UpdatePartyStatus(context.Background(), models.SENDER, "missing", models.PartyInactive)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListParties(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, PartiesTableName: "parties"}

	senderAV, _ := attributevalue.MarshalMap(toPartyRecord(sampleSender()))
	mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{senderAV}}, nil)

	parties, err := store.ListParties(context.Background(), models.SENDER)

	require.NoError(t, err)
	require.Len(t, parties, 1)
	assert.Equal(t, models.SENDER, parties[0].Kind)
}
