package app

import (
	"context"
	"errors"

	"go-mrf/internal/bootstrap"
	"go-mrf/internal/config"
	"go-mrf/internal/dashboard"
	"go-mrf/internal/events"
	"go-mrf/internal/messaging/kafka/consumer"
	"go-mrf/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const lifecycleConsumerGroup = "go-mrf-dashboard-projector"

// RunConsumer projects requisition lifecycle events into cache invalidations
// and audit entries until ctx is done.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")
	if cfg.KafkaBroker == "" {
		return errors.New("consumer: KAFKA_BROKER is required")
	}

	redisClient, err := connection.Redis(ctx, cfg.RedisAddr, connection.DefaultPolicy)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// Only Invalidate is used here, so no storage or gate is wired.
	dashboards := dashboard.NewService(nil, nil, nil, redisClient, logger)
	projector := consumer.NewLifecycleProjector(dashboards, bootstrap.NewZapAuditLogger(logger))

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.KafkaBroker},
		Topic:       events.RequisitionLifecycleTopic,
		GroupID:     lifecycleConsumerGroup,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeRequisitionLifecycle(ctx, reader, projector, logger)
	return nil
}
