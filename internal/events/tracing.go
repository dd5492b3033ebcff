package events

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	amqp "github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "productcatalog/events"

// startPublishSpan opens a producer span for event on system ("kafka", "rabbitmq", ...).
func startPublishSpan(ctx context.Context, system string, event ProductEvent) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, event.Topic+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", system),
			attribute.String("messaging.destination.name", event.Topic),
			attribute.Int64("catalog.product_id", int64(event.ProductID)),
		),
	)
}

// kafkaHeaders returns the trace context of ctx as Kafka headers.
func kafkaHeaders(ctx context.Context) []kafkago.Header {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := make([]kafkago.Header, 0, len(carrier))
	for _, key := range carrier.Keys() {
		headers = append(headers, kafkago.Header{Key: key, Value: []byte(carrier.Get(key))})
	}
	return headers
}

// amqpHeaders returns the trace context of ctx as an AMQP header table.
func amqpHeaders(ctx context.Context) amqp.Table {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := amqp.Table{}
	for key, value := range carrier {
		headers[key] = value
	}
	return headers
}

// ExtractAMQP restores the trace context carried in delivery headers.
func ExtractAMQP(ctx context.Context, headers amqp.Table) context.Context {
	carrier := propagation.MapCarrier{}
	for key, value := range headers {
		if s, ok := value.(string); ok {
			carrier[key] = s
		}
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}
