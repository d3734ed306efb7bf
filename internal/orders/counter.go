package orders

import (
	"context"
	"sync/atomic"

	"github.com/ridness/clubbot/core/logger"
	"log/slog"
)

// Counter tracks completed preorders for the lifetime of the process.
// Values reset on restart; the stats command reports them as-is.
type Counter struct {
	total atomic.Int64
}

// NewCounter returns a zeroed counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment records one completed preorder and returns the new total.
func (c *Counter) Increment() int64 {
	return c.total.Add(1)
}

// Add adjusts the counter by delta (admin correction path) and returns the new total.
func (c *Counter) Add(ctx context.Context, delta int64) int64 {
	total := c.total.Add(delta)
	logger.Info(ctx, "service.orders", "counter.adjusted",
		slog.Int64("count", delta),
		slog.Int64("orders", total),
	)
	return total
}

// Total returns the current number of completed preorders.
func (c *Counter) Total() int64 {
	return c.total.Load()
}
