package producer

import (
	"context"
	"time"

	"go-mrf/internal/messaging/kafka"

	"go.uber.org/zap"
)

// RelayOptions tunes how often and how much the relay publishes.
type RelayOptions struct {
	PollInterval time.Duration
	BatchSize    int
	// Lease hides claimed rows from other relays while they are in flight.
	Lease time.Duration
	// Retention is how long sent rows are kept; zero disables purging.
	Retention time.Duration
	// PurgeEvery runs the purge once per this many polls.
	PurgeEvery int
}

func (o RelayOptions) withDefaults() RelayOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.Lease <= 0 {
		o.Lease = 30 * time.Second
	}
	if o.PurgeEvery <= 0 {
		o.PurgeEvery = 200
	}
	return o
}

// Relay moves committed outbox rows onto kafka.
type Relay struct {
	repo   kafka.OutboxRepository
	writer Writer
	opts   RelayOptions
	logger *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer Writer, opts RelayOptions, logger ...*zap.Logger) *Relay {
	l := zap.L().Named("kafka.relay")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.relay")
	}
	return &Relay{repo: repo, writer: writer, opts: opts.withDefaults(), logger: l}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started",
		zap.Duration("poll_interval", r.opts.PollInterval),
		zap.Int("batch_size", r.opts.BatchSize),
	)

	for polls := 1; ; polls++ {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}

		if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("flush outbox failed", zap.Error(err))
		}
		if r.opts.Retention > 0 && polls%r.opts.PurgeEvery == 0 {
			r.purge(ctx)
		}
	}
}

// Flush claims one batch and publishes it, returning how many rows were sent.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	batch, err := r.repo.ClaimDue(ctx, r.opts.BatchSize, r.opts.Lease)
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}
	r.logger.Debug("claimed outbox batch", zap.Int("count", len(batch)))

	sent := 0
	for _, ev := range batch {
		log := r.logger.With(
			zap.String("outbox_id", ev.ID),
			zap.String("event_type", ev.EventType),
			zap.String("aggregate_id", ev.AggregateID),
		)

		if err := publishEvent(ctx, r.writer, ev); err != nil {
			log.Warn("publish outbox event failed", zap.Int("attempts", ev.Attempts), zap.Error(err))
			if markErr := r.repo.MarkFailed(ctx, ev, err.Error()); markErr != nil {
				log.Error("record outbox failure failed", zap.Error(markErr))
			}
			continue
		}

		// The lease expires and the row is republished if this write is lost;
		// consumers tolerate duplicates.
		if err := r.repo.MarkSent(ctx, ev.ID); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		sent++
		log.Info("outbox event published", zap.String("request_id", ev.RequestID))
	}

	return sent, nil
}

func (r *Relay) purge(ctx context.Context) {
	n, err := r.repo.PurgeSent(ctx, r.opts.Retention)
	if err != nil {
		r.logger.Error("purge sent outbox rows failed", zap.Error(err))
		return
	}
	if n > 0 {
		r.logger.Info("purged sent outbox rows", zap.Int64("count", n))
	}
}
