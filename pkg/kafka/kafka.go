package kafka

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	BatchTimeout = 10 * time.Millisecond
	BatchSize    = 100
)

// Producer is the subset of *kafka.Writer the catalog uses.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Config holds Kafka producer settings.
type Config struct {
	Brokers []string
}

// NewWriter builds a kafka-go writer for cfg. The writer has no default
// topic; every message names its own.
func NewWriter(cfg Config) (*kafkago.Writer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one Kafka broker is required")
	}
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           BatchTimeout,
		BatchSize:              BatchSize,
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}, nil
}
