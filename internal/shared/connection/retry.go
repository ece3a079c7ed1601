// Package connection opens the process's backing services, retrying while
// they come up.
package connection

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Policy bounds how long a dependency is waited for.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy waits about half a minute for a container to come up.
var DefaultPolicy = Policy{Attempts: 6, Delay: 5 * time.Second}

// Retry calls dial until it succeeds, attempts run out or ctx is done.
func Retry(ctx context.Context, name string, p Policy, dial func(context.Context) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	logger := zap.L().Named("connection." + name)

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if lastErr = dial(ctx); lastErr == nil {
			return nil
		}
		logger.Warn("dial failed",
			zap.Int("attempt", attempt),
			zap.Int("max", p.Attempts),
			zap.Error(lastErr),
		)
		if attempt == p.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		case <-time.After(p.Delay):
		}
	}
	return fmt.Errorf("%s unreachable after %d attempts: %w", name, p.Attempts, lastErr)
}
