package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"productcatalog/internal/config"
	"productcatalog/internal/database"
	"productcatalog/internal/events"
	"productcatalog/pkg/kafka"
	"productcatalog/pkg/logger"
	"productcatalog/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(config.ServiceName, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// --- Database ---
	db, err := database.Open(cfg, zl)
	if err != nil {
		zl.Fatal("Failed to open database", zap.Error(err), zap.String("driver", cfg.DBDriver))
	}

	// --- Event Publisher ---
	publisher, mqClient, err := newPublisher(cfg, zl)
	if err != nil {
		zl.Fatal("Failed to initialize event publisher", zap.Error(err), zap.String("driver", cfg.EventsDriver))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			zl.Error("Error closing event publisher", zap.Error(err))
		}
	}()

	// --- Diagnostic consumer ---
	// Tails the product exchange so published events show up in this service's log.
	if cfg.EventsConsume && mqClient != nil {
		queue := config.ServiceName + "." + events.UnitAvailable
		if err := mqClient.Consume(queue, events.UnitAvailableTopic, events.LogDeliveries(zl)); err != nil {
			zl.Error("Failed to start RabbitMQ consumer", zap.Error(err))
		}
	}

	app := NewApp(db, publisher, zl)

	// --- Start HTTP Server ---
	zl.Info("Starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			zl.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zl.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		zl.Error("Error during Fiber shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	zl.Info("Server gracefully stopped")
}

// newPublisher builds the configured event publisher. The RabbitMQ client is
// also returned so the caller can attach a consumer to it.
func newPublisher(cfg *config.Config, zl *zap.Logger) (events.Publisher, *rabbitmq.Client, error) {
	switch cfg.EventsDriver {
	case config.EventsDriverKafka:
		writer, err := kafka.NewWriter(kafka.Config{Brokers: cfg.KafkaBrokers})
		if err != nil {
			return nil, nil, err
		}
		zl.Info("Publishing product events to Kafka", zap.Strings("brokers", cfg.KafkaBrokers))
		return events.NewKafkaPublisher(writer), nil, nil
	case config.EventsDriverRabbitMQ:
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange}, zl)
		if err != nil {
			return nil, nil, err
		}
		return events.NewRabbitMQPublisher(client), client, nil
	case config.EventsDriverLog:
		return events.NewLogPublisher(zl), nil, nil
	}
	return nil, nil, fmt.Errorf("unsupported events driver %q", cfg.EventsDriver)
}
