package interfaces

import (
	"context"
	"time"
)

type IClock interface {
	Now() time.Time
}

// IDelayer emulates the latency of a remote call. Tests inject one that
// returns immediately.
type IDelayer interface {
	Wait(ctx context.Context, d time.Duration) error
}
