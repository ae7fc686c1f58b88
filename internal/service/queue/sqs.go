package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/camate/camate-api/internal/config"
)

type MessageType string

const (
	MessageTypeProvision MessageType = "PROVISION"
)

// Message is a provisioning job for one firm. Provisioning is idempotent, so
// at-least-once delivery is fine.
type Message struct {
	Type      MessageType `json:"type"`
	CACode    string      `json:"ca_code"`
	Timestamp time.Time   `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client            *sqs.Client
	provisionQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:            client,
		provisionQueueURL: config.ProvisionQueueURL,
	}
}

// SendProvisionMessage enqueues a provisioning job for a freshly signed-up firm.
func (s *SQSService) SendProvisionMessage(ctx context.Context, caCode string) error {
	msg := Message{
		Type:      MessageTypeProvision,
		CACode:    caCode,
		Timestamp: time.Now(),
	}
	return s.sendMessage(ctx, msg, s.provisionQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ReceiveProvisionMessages long-polls the provisioning queue.
func (s *SQSService) ReceiveProvisionMessages(ctx context.Context, maxMessages int32, waitTime int32) ([]ReceivedMessage, error) {
	out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.provisionQueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(out.Messages))
	for _, raw := range out.Messages {
		var msg Message
		if err := json.Unmarshal([]byte(aws.ToString(raw.Body)), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       msg,
			ReceiptHandle: raw.ReceiptHandle,
		})
	}
	return messages, nil
}

// DeleteMessage acknowledges a processed message.
func (s *SQSService) DeleteMessage(ctx context.Context, receiptHandle *string) error {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.provisionQueueURL),
		ReceiptHandle: receiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
