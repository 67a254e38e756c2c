package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper purges expired sessions.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// StartSessionSweeper runs sweeper every interval until ctx is done. The
// returned channel closes once the loop has exited. A non-positive interval
// disables sweeping.
func StartSessionSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if sweeper == nil || interval <= 0 {
		close(done)
		return done
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := sweeper.Sweep(ctx)
				if err != nil {
					logger.Warn("session sweep failed", zap.Error(err))
					continue
				}
				if removed > 0 {
					logger.Debug("expired sessions removed", zap.Int("count", removed))
				}
			}
		}
	}()
	return done
}
