package http

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Cleanup(time.Duration) int {
	s.calls.Add(1)
	return 1
}

func (s *countingSweeper) Len() int { return 0 }

func TestStartRateLimitCleanup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}

	done := make(chan struct{})
	go func() {
		StartRateLimitCleanup(ctx, sweeper, 5*time.Millisecond, time.Minute)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}

func TestStartRateLimitCleanup_LogsLifecycleOnce(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	StartRateLimitCleanup(ctx, &countingSweeper{}, time.Minute, time.Minute)

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "rate limit cleanup started"))
	assert.Contains(t, out, `"interval":60000000000`)
	assert.Equal(t, 1, strings.Count(out, "rate limit cleanup stopped"))
}
