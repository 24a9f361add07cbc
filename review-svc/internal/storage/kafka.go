package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"fooddelivery/review-svc/internal/domain"
)

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishReviewEvent keys the message by menu item so changes to one item
// stay ordered within a partition.
func (p *KafkaPublisher) PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal review event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventItemID(event)),
		Value: payload,
	})
}

func eventItemID(event domain.ReviewEvent) string {
	for _, image := range []map[string]any{event.After, event.Before} {
		if id, ok := image["menuItemId"].(string); ok && id != "" {
			return id
		}
	}
	return event.ReviewID
}
