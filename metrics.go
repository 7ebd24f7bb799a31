package ttgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Only maintenance operations are instrumented. The probe/store hot path
// carries no metrics hooks on purpose: a counter per probe would cost more
// than the table's entire synchronization budget.
type MetricsCollector interface {
	// RecordResize is called after each hash resize.
	// megabytes is the requested size, duration the total time taken.
	RecordResize(megabytes int, duration time.Duration, err error)

	// RecordClear is called after each full table clear.
	RecordClear(duration time.Duration)

	// RecordNewSearch is called when a new search generation starts.
	RecordNewSearch()

	// RecordHashfull is called after each hash usage sample.
	RecordHashfull(permille int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResize(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClear(time.Duration)              {}
func (NoopMetricsCollector) RecordNewSearch()                       {}
func (NoopMetricsCollector) RecordHashfull(int)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResizeCount      atomic.Int64
	ResizeErrors     atomic.Int64
	ResizeTotalNanos atomic.Int64
	ClearCount       atomic.Int64
	ClearTotalNanos  atomic.Int64
	SearchCount      atomic.Int64
	LastHashfull     atomic.Int64
}

// RecordResize implements MetricsCollector.
func (c *BasicMetricsCollector) RecordResize(megabytes int, duration time.Duration, err error) {
	c.ResizeCount.Add(1)
	c.ResizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.ResizeErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (c *BasicMetricsCollector) RecordClear(duration time.Duration) {
	c.ClearCount.Add(1)
	c.ClearTotalNanos.Add(duration.Nanoseconds())
}

// RecordNewSearch implements MetricsCollector.
func (c *BasicMetricsCollector) RecordNewSearch() {
	c.SearchCount.Add(1)
}

// RecordHashfull implements MetricsCollector.
func (c *BasicMetricsCollector) RecordHashfull(permille int) {
	c.LastHashfull.Store(int64(permille))
}
