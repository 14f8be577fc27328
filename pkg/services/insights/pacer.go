package insights

import (
	"context"
	"time"
)

// Sleeper abstracts waiting so pacing and backoff are testable with a fake
// clock.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on the wall clock, honoring context cancellation.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pacer inserts a fixed pause between successive calls. The first Wait is
// free.
type Pacer struct {
	interval time.Duration
	sleeper  Sleeper
	primed   bool
}

func NewPacer(interval time.Duration, sleeper Sleeper) *Pacer {
	if sleeper == nil {
		sleeper = RealSleeper{}
	}
	return &Pacer{interval: interval, sleeper: sleeper}
}

func (p *Pacer) Wait(ctx context.Context) error {
	if !p.primed {
		p.primed = true
		return ctx.Err()
	}
	return p.sleeper.Sleep(ctx, p.interval)
}
