package events

import (
	"context"
	"fmt"

	amqp "github.com/streadway/amqp"
	"go.opentelemetry.io/otel/codes"
)

// AMQPClient is the part of *rabbitmq.Client used for publishing.
type AMQPClient interface {
	Publish(ctx context.Context, routingKey string, body []byte, headers amqp.Table) error
	Close() error
}

// RabbitMQPublisher publishes product events to a topic exchange, routed by event topic.
type RabbitMQPublisher struct {
	client AMQPClient
}

// NewRabbitMQPublisher creates a new RabbitMQPublisher.
func NewRabbitMQPublisher(client AMQPClient) *RabbitMQPublisher {
	return &RabbitMQPublisher{client: client}
}

// Publish implements Publisher.
func (p *RabbitMQPublisher) Publish(ctx context.Context, event ProductEvent) error {
	ctx, span := startPublishSpan(ctx, "rabbitmq", event)
	defer span.End()

	body, err := event.Body()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := p.client.Publish(ctx, event.Topic, body, amqpHeaders(ctx)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to publish %s event: %w", event.Topic, err)
	}
	return nil
}

// Close closes the underlying client.
func (p *RabbitMQPublisher) Close() error {
	return p.client.Close()
}
