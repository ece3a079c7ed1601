package rolemember

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Reloader interface {
	Reload(ctx context.Context) error
}

// KeepFresh calls Reload every interval until ctx is done. A role change is
// applied at once only on the replica that served it; the others catch up
// here. A failed reload keeps the previous membership.
func KeepFresh(ctx context.Context, r Reloader, every time.Duration, logger ...*zap.Logger) {
	l := zap.L().Named("rolemember.reloader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rolemember.reloader")
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := r.Reload(ctx); err != nil && ctx.Err() == nil {
			l.Warn("periodic role reload failed, keeping previous membership", zap.Error(err))
		}
	}
}
