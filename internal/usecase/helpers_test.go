package usecase

import (
	"context"
	"sync"
	"time"

	"storefront/internal/adapter/persistence/repository"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock { return &fixedClock{now: now} }

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// immediateDelayer records requested delays and returns at once.
type immediateDelayer struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (d *immediateDelayer) Wait(ctx context.Context, dur time.Duration) error {
	d.mu.Lock()
	d.calls = append(d.calls, dur)
	d.mu.Unlock()
	return ctx.Err()
}

func (d *immediateDelayer) Calls() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]time.Duration(nil), d.calls...)
}

// gateDelayer blocks until release is closed.
type gateDelayer struct {
	entered chan struct{}
	release chan struct{}
}

func newGateDelayer() *gateDelayer {
	return &gateDelayer{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (d *gateDelayer) Wait(ctx context.Context, _ time.Duration) error {
	d.entered <- struct{}{}
	select {
	case <-d.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newMemoryStore() *repository.MemoryKVStore {
	return repository.NewMemoryKVStore("")
}
