// Package resource provides global resource budgeting for the engine:
// a hard cap on table memory and a throughput limit for bulk maintenance.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a single reservation is larger
// than the configured memory limit and so could never succeed.
var ErrMemoryLimitExceeded = errors.New("resource: requested memory exceeds configured limit")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for table memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// ClearLimitBytesPerSec caps the zeroing throughput of Clear, so a
	// multi-gigabyte clear does not saturate the memory bus under an
	// active engine. If 0, unlimited.
	ClearLimitBytesPerSec int64
}

// Controller manages engine-wide resources. It satisfies both the table's
// MemoryAcquirer and Throttle capabilities.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Maintenance throughput
	clearLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.ClearLimitBytesPerSec > 0 {
		c.clearLimiter = rate.NewLimiter(rate.Limit(cfg.ClearLimitBytesPerSec), int(cfg.ClearLimitBytesPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if bytes > c.cfg.MemoryLimitBytes {
			// Waiting would never succeed; fail fast instead of blocking
			// until ctx expires.
			return ErrMemoryLimitExceeded
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if the limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	return c.memUsed.Load()
}

// AcquireIO waits until the clear throughput limit allows the specified
// number of bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.clearLimiter == nil {
		return nil
	}
	return c.clearLimiter.WaitN(ctx, bytes)
}
