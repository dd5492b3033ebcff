package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes events to the application log instead of a broker.
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish implements Publisher.
func (p *LogPublisher) Publish(ctx context.Context, event ProductEvent) error {
	body, err := event.Body()
	if err != nil {
		return err
	}
	p.logger.Info("Product event",
		zap.String("topic", event.Topic),
		zap.Uint("product_id", event.ProductID),
		zap.ByteString("body", body),
	)
	return nil
}

// Close implements Publisher.
func (p *LogPublisher) Close() error {
	return nil
}
