package clock

import (
	"context"
	"time"

	"storefront/internal/usecase/interfaces"
)

// System reads the wall clock in UTC.
type System struct{}

var _ interfaces.IClock = System{}

func (System) Now() time.Time { return time.Now().UTC() }

// TimerDelayer sleeps for d or until ctx is done.
type TimerDelayer struct{}

var _ interfaces.IDelayer = TimerDelayer{}

func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
