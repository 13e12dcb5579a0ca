package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS client used for publishing.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher implements the Publisher interface using AWS SQS.
type SQSPublisher struct {
	Client   SQSAPI
	QueueURL string
	// FIFO queues order messages per transaction and deduplicate redelivered publishes.
	FIFO bool
}

// NewSQSPublisher creates a new SQSPublisher. FIFO mode follows the queue's ".fifo" suffix.
func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{
		Client:   client,
		QueueURL: queueURL,
		FIFO:     strings.HasSuffix(queueURL, ".fifo"),
	}
}

// Make sure we conform to the interface
var _ Publisher = (*SQSPublisher)(nil)

// Publish sends the event to the SQS queue.
func (p *SQSPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event for SQS: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(evt.Type)),
			},
			"transactionId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(evt.TransactionID),
			},
		},
	}
	if p.FIFO {
		input.MessageGroupId = aws.String(evt.TransactionID)
		input.MessageDeduplicationId = aws.String(evt.ID)
	}

	if _, err := p.Client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send event to SQS: %w", err)
	}

	return nil
}
