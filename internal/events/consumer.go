package events

import (
	"context"

	amqp "github.com/streadway/amqp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// LogDeliveries returns a RabbitMQ delivery handler that logs every product
// event it receives. Payloads that do not decode are logged and dropped.
func LogDeliveries(logger *zap.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		ctx := ExtractAMQP(context.Background(), msg.Headers)
		fields := []zap.Field{
			zap.String("routing_key", msg.RoutingKey),
			zap.Uint64("delivery_tag", msg.DeliveryTag),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}

		payload, err := DecodeProductMessage(msg.Body)
		if err != nil {
			logger.Warn("Dropping malformed product event", append(fields, zap.Error(err), zap.ByteString("body", msg.Body))...)
			return nil
		}

		logger.Info("Received product event", append(fields, zap.Uint("product_id", payload.ProductID))...)
		return nil
	}
}
