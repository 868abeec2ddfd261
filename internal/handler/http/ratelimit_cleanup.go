package http

import (
	"context"
	"log/slog"
	"time"
)

// DefaultCleanupInterval is how often idle rate limit buckets are swept.
const DefaultCleanupInterval = 5 * time.Minute

// DefaultCleanupMaxIdle is how long a client may be idle before its bucket is dropped.
const DefaultCleanupMaxIdle = 10 * time.Minute

// Sweeper is implemented by limiters that can forget idle clients.
type Sweeper interface {
	Cleanup(maxIdle time.Duration) int
	Len() int
}

// StartRateLimitCleanup sweeps idle entries from limiter every interval until
// ctx is canceled. It blocks, so callers run it in a goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter Sweeper, interval, maxIdle time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	if maxIdle <= 0 {
		maxIdle = DefaultCleanupMaxIdle
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("max_idle", maxIdle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return
		case <-ticker.C:
			removed := limiter.Cleanup(maxIdle)
			slog.Debug("rate limit cleanup completed",
				slog.Int("keys_removed", removed),
				slog.Int("active_keys", limiter.Len()))
		}
	}
}
