package app

import (
	"context"

	"go-mrf/internal/config"
	"go-mrf/internal/messaging/kafka"
	"go-mrf/internal/messaging/kafka/producer"
	"go-mrf/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays committed outbox rows to kafka until ctx is done.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.Postgres(ctx, cfg.Database, connection.DefaultPolicy)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.KafkaWriter(ctx, cfg.KafkaBroker, connection.DefaultPolicy)
	if err != nil {
		return err
	}
	defer writer.Close()

	relay := producer.NewRelay(kafka.NewOutboxRepository(sqlDB), writer, producer.RelayOptions{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		Retention:    cfg.Outbox.Retention,
	}, logger)

	relay.Run(ctx)
	return nil
}
