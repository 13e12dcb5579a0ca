package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/remittance-transactions/pkg/models"
)

// ListTransactions scans the table with the filter pushed down as a FilterExpression,
// then orders newest-first and cuts the requested page.
func (s *Store) ListTransactions(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	txs, err := s.scanTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for transactions: %w", err)
	}

	// Sort transactions by CreatedAt in descending order.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	page := &models.TransactionPage{
		Items: []models.Transaction{},
		Total: len(txs),
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	start := filter.Offset()
	if start >= len(txs) {
		return page, nil
	}
	end := len(txs)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	page.Items = txs[start:end]
	return page, nil
}

// TransactionStats aggregates every transaction created within [from, to].
func (s *Store) TransactionStats(ctx context.Context, from, to *time.Time) (*models.TransactionStats, error) {
	txs, err := s.scanTransactions(ctx, models.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to scan for transaction stats: %w", err)
	}
	stats := models.Summarize(txs)
	return &stats, nil
}

// scanTransactions follows LastEvaluatedKey until the whole table has been read.
func (s *Store) scanTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	expr, names, values := buildFilterExpression(filter)

	var transactions []models.Transaction
	var startKey map[string]types.AttributeValue
	for {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(s.TransactionsTableName),
			FilterExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		}

		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var records []transactionRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		for _, rec := range records {
			transactions = append(transactions, rec.toModel())
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return transactions, nil
}

// buildFilterExpression translates a TransactionFilter into a Scan FilterExpression.
// Reference guard items are always excluded.
func buildFilterExpression(filter models.TransactionFilter) (string, map[string]string, map[string]types.AttributeValue) {
	clauses := []string{"#record_type = :record_type"}
	names := map[string]string{"#record_type": "record_type"}
	values := map[string]types.AttributeValue{
		":record_type": &types.AttributeValueMemberS{Value: recordTypeTransaction},
	}

	if filter.Status != "" {
		clauses = append(clauses, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.SenderId != "" {
		clauses = append(clauses, "sender_id = :sender_id")
		values[":sender_id"] = &types.AttributeValueMemberS{Value: filter.SenderId}
	}
	if filter.ReceiverId != "" {
		clauses = append(clauses, "receiver_id = :receiver_id")
		values[":receiver_id"] = &types.AttributeValueMemberS{Value: filter.ReceiverId}
	}
	if filter.From != nil {
		clauses = append(clauses, "created_at >= :from")
		values[":from"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", millis(*filter.From))}
	}
	if filter.To != nil {
		clauses = append(clauses, "created_at <= :to")
		values[":to"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", millis(*filter.To))}
	}
	if filter.MinAmount != nil {
		clauses = append(clauses, "amount_source >= :min_amount")
		values[":min_amount"] = &types.AttributeValueMemberN{Value: filter.MinAmount.String()}
	}
	if filter.MaxAmount != nil {
		clauses = append(clauses, "amount_source <= :max_amount")
		values[":max_amount"] = &types.AttributeValueMemberN{Value: filter.MaxAmount.String()}
	}

	return strings.Join(clauses, " AND "), names, values
}
