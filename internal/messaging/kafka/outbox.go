// Package kafka holds the transactional outbox shared by the API (writer side)
// and the relay worker (publisher side).
package kafka

import (
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	OutboxStatusDead    = "dead"

	// MaxOutboxRetries is the number of failed publishes after which a row
	// is parked as dead and no longer claimed.
	MaxOutboxRetries = 10

	maxFailureReason = 500
	baseRetryDelay   = 15 * time.Second
	maxRetryDelay    = 10 * time.Minute
)

// OutboxEvent is one row of outbox_events. Attempts counts failed publishes.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	Attempts      int
	CreatedAt     time.Time
}

// Validate checks the fields a row needs before it is inserted.
func (e OutboxEvent) Validate() error {
	switch {
	case e.ID == "":
		return errors.New("outbox id is required")
	case e.AggregateID == "":
		return errors.New("outbox aggregate id is required")
	case e.Topic == "":
		return errors.New("outbox topic is required")
	case len(e.Payload) == 0:
		return errors.New("outbox payload is required")
	}

	switch e.Status {
	case OutboxStatusPending, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", e.Status)
	}
}

// RetryDelay is the wait before the given attempt (1-based) is retried.
// It doubles from 15s and is capped at 10m.
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseRetryDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

// failureState returns the status and retry delay after one more failed
// publish of an event that already failed attempts times.
func failureState(attempts int) (string, time.Duration) {
	next := attempts + 1
	if next >= MaxOutboxRetries {
		return OutboxStatusDead, 0
	}
	return OutboxStatusFailed, RetryDelay(next)
}

func truncateReason(reason string) string {
	r := []rune(reason)
	if len(r) <= maxFailureReason {
		return reason
	}
	return string(r[:maxFailureReason])
}
