package service

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_UnderLimit(t *testing.T) {
	l := newRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if err := l.wait(context.Background()); err != nil {
			t.Fatalf("wait %d returned error: %v", i, err)
		}
	}
}

func TestRateLimiter_WaitsWhenFull(t *testing.T) {
	l := newRateLimiter(2, time.Minute)

	clock := time.Now()
	var slept time.Duration
	l.now = func() time.Time { return clock }
	l.sleep = func(ctx context.Context, d time.Duration) error {
		slept += d
		clock = clock.Add(d)
		return nil
	}

	for i := 0; i < 2; i++ {
		if err := l.wait(context.Background()); err != nil {
			t.Fatalf("wait %d returned error: %v", i, err)
		}
	}
	if slept != 0 {
		t.Fatalf("no sleep expected while under the limit, slept %v", slept)
	}

	if err := l.wait(context.Background()); err != nil {
		t.Fatalf("third wait returned error: %v", err)
	}
	if slept != time.Minute {
		t.Errorf("slept %v, want the full window", slept)
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	l := newRateLimiter(1, time.Minute)

	clock := time.Now()
	l.now = func() time.Time { return clock }
	l.sleep = func(ctx context.Context, d time.Duration) error {
		t.Fatalf("should not sleep after the window expired")
		return nil
	}

	if err := l.wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	clock = clock.Add(time.Minute + time.Second)
	if err := l.wait(context.Background()); err != nil {
		t.Fatalf("second wait after window: %v", err)
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	l := newRateLimiter(1, time.Minute)
	if err := l.wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.wait(ctx); err == nil {
		t.Error("wait on a canceled context should fail")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	l := newRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		if err := l.wait(context.Background()); err != nil {
			t.Fatalf("disabled limiter should never block: %v", err)
		}
	}
}
