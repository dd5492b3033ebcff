package events

import (
	"context"
	"fmt"

	"productcatalog/pkg/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/codes"
)

// KafkaPublisher publishes product events as Kafka messages, one topic per event type.
type KafkaPublisher struct {
	producer kafka.Producer
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer kafka.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(ctx context.Context, event ProductEvent) error {
	ctx, span := startPublishSpan(ctx, "kafka", event)
	defer span.End()

	body, err := event.Body()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	msg := kafkago.Message{
		Topic:   event.Topic,
		Key:     event.Key(),
		Value:   body,
		Headers: kafkaHeaders(ctx),
	}
	if err := p.producer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to write %s message: %w", event.Topic, err)
	}
	return nil
}

// Close closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
