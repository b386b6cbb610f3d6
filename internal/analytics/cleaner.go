package analytics

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner periodically enforces the retention period
type Cleaner struct {
	store     *Store
	retention time.Duration
	interval  time.Duration
	done      chan struct{}
}

func NewCleaner(store *Store, retention, interval time.Duration) *Cleaner {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if retention <= 0 {
		retention = 365 * 24 * time.Hour
	}

	return &Cleaner{
		store:     store,
		retention: retention,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start runs the worker in a goroutine until ctx is cancelled. Call Start at most once.
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

// Wait blocks until a started worker has returned. The store must stay open until then.
func (c *Cleaner) Wait() {
	<-c.done
}

func (c *Cleaner) run(ctx context.Context) {
	defer close(c.done)
	slog.Info("retention worker started", "interval", c.interval, "retention", c.retention)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("retention worker stopped")
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// Run performs a single cleanup cycle and returns the number of rows removed
func (c *Cleaner) Run(ctx context.Context) (int64, error) {
	removed, err := c.store.Cleanup(ctx, c.retention)
	if err != nil {
		return removed, err
	}

	if removed > 0 {
		slog.Info("privacy cleanup removed old records", "count", removed, "retention", c.retention)
	} else {
		slog.Debug("no analytics records past retention")
	}
	return removed, nil
}

// RunOnce is Run for the background worker: errors are logged, not returned
func (c *Cleaner) RunOnce(ctx context.Context) int64 {
	removed, err := c.Run(ctx)
	if err != nil && ctx.Err() == nil {
		slog.Error("failed to clean up analytics data", "error", err)
	}
	return removed
}
