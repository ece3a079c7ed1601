package kafka

import (
	"context"
	"database/sql"
	"slices"
	"time"
)

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	// ClaimDue leases up to limit due rows so concurrent relays skip them
	// until the lease runs out.
	ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
	PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error)
}

type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() sqlExecutor {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const insertOutboxSQL = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`

// Create inserts the row on the bound tx, so it commits or rolls back with
// the state change that produced it.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	_, err := r.conn().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

const claimOutboxSQL = `
UPDATE outbox_events o
SET next_retry_at = NOW() + make_interval(secs => $3), updated_at = NOW()
WHERE o.id IN (
	SELECT id FROM outbox_events
	WHERE status IN ($1, $2)
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	ORDER BY created_at
	LIMIT $4
	FOR UPDATE SKIP LOCKED
)
RETURNING o.id::text, COALESCE(o.request_id, ''), o.aggregate_type, o.aggregate_id::text,
	o.event_type, o.topic, o.payload, o.status, o.retry_count, o.created_at`

func (r *outboxRepository) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, claimOutboxSQL,
		OutboxStatusPending, OutboxStatusFailed, lease.Seconds(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claimed []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.Attempts, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		claimed = append(claimed, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// RETURNING carries no order; publish oldest first.
	slices.SortStableFunc(claimed, func(a, b OutboxEvent) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return claimed, nil
}

const markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

const markFailedSQL = `
UPDATE outbox_events
SET status = $2,
	retry_count = retry_count + 1,
	error_message = $3,
	next_retry_at = NOW() + make_interval(secs => $4),
	updated_at = NOW()
WHERE id = $1`

// MarkFailed records one failed publish. The row goes dead once it reaches
// MaxOutboxRetries.
func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	status, delay := failureState(event.Attempts)
	_, err := r.db.ExecContext(ctx, markFailedSQL,
		event.ID, status, truncateReason(reason), delay.Seconds(),
	)
	return err
}

const purgeSentSQL = `
DELETE FROM outbox_events
WHERE status = $1 AND processed_at < NOW() - make_interval(secs => $2)`

func (r *outboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeSentSQL, OutboxStatusSent, olderThan.Seconds())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
