package connection

import (
	"context"
	"fmt"
	"time"

	"go-mrf/internal/config"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresDSN renders the key/value DSN the pgx driver expects.
func PostgresDSN(c config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// Postgres opens gorm over the pool and pings it.
func Postgres(ctx context.Context, c config.DatabaseConfig, p Policy) (*gorm.DB, error) {
	var db *gorm.DB
	err := Retry(ctx, "postgres", p, func(ctx context.Context) error {
		gdb, err := gorm.Open(postgres.Open(PostgresDSN(c)), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		db = gdb
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Named("connection.postgres").Info("connected",
		zap.String("host", c.Host),
		zap.String("dbname", c.Name),
	)
	return db, nil
}

func Redis(ctx context.Context, addr string, p Policy) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	err := Retry(ctx, "redis", p, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	zap.L().Named("connection.redis").Info("connected", zap.String("addr", addr))
	return rdb, nil
}

// KafkaWriter waits for the broker to list its cluster, then returns a writer
// with no default topic; each message names its own.
func KafkaWriter(ctx context.Context, broker string, p Policy) (*kafkago.Writer, error) {
	if broker == "" {
		return nil, fmt.Errorf("kafka: KAFKA_BROKER is required")
	}

	err := Retry(ctx, "kafka", p, func(ctx context.Context) error {
		conn, err := (&kafkago.Dialer{Timeout: 5 * time.Second}).DialContext(ctx, "tcp", broker)
		if err != nil {
			return err
		}
		defer conn.Close()
		_, err = conn.Brokers()
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Named("connection.kafka").Info("connected", zap.String("broker", broker))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}
