package service

import (
	"context"
	"sync"
	"time"
)

// rateLimiter is a sliding-window limiter for outbound provider calls.
// Free-tier model APIs throttle hard at the minute granularity, so the
// gateway waits instead of failing when the window is full.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	times  []time.Time
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// wait blocks until a slot is free in the window or the context ends.
func (l *rateLimiter) wait(ctx context.Context) error {
	if l == nil || l.limit <= 0 {
		return nil
	}

	for {
		l.mu.Lock()
		now := l.now()
		kept := l.times[:0]
		for _, t := range l.times {
			if now.Sub(t) < l.window {
				kept = append(kept, t)
			}
		}
		l.times = kept

		if len(l.times) < l.limit {
			l.times = append(l.times, now)
			l.mu.Unlock()
			return nil
		}

		pause := l.window - now.Sub(l.times[0])
		l.mu.Unlock()

		if err := l.sleep(ctx, pause); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
