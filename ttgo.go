package ttgo

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/ttgo/pool"
	"github.com/hupe1980/ttgo/resource"
	"github.com/hupe1980/ttgo/tt"
)

// DefaultHashSizeMB is the table size used when WithHashSize is not given.
const DefaultHashSizeMB = 16

// Search identifies one analysis request. The ID correlates logs and
// metrics across the search's lifetime; Generation is the table stamp the
// search's stores are tagged with.
type Search struct {
	ID         uuid.UUID
	Generation uint8
}

// Engine is the explicit ownership root for the process-wide transposition
// table. It owns the table's backing memory, the maintenance worker pool
// and the optional resource budget; search drivers borrow the table via
// Table and must treat Engine lifecycle methods as requiring quiescence.
//
// There is no hidden global: create one Engine per process and pass it
// down explicitly.
type Engine struct {
	table   *tt.Table
	pool    *pool.WorkerPool
	rc      *resource.Controller
	logger  *Logger
	metrics MetricsCollector
	closed  atomic.Bool
}

// New creates an Engine and sizes its table, which is immediately usable.
// The returned Engine must be Closed to release the table memory.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	o := options{
		hashSizeMB:       DefaultHashSizeMB,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	wp := pool.New(o.workers)

	ttOpts := []tt.Option{tt.WithExecutor(wp)}
	if o.ageWeight > 0 {
		ttOpts = append(ttOpts, tt.WithAgeWeight(o.ageWeight))
	}
	if o.hashfullSample > 0 {
		ttOpts = append(ttOpts, tt.WithHashfullSample(o.hashfullSample))
	}

	var rc *resource.Controller
	if o.resourceConfig != nil {
		rc = resource.NewController(*o.resourceConfig)
		ttOpts = append(ttOpts, tt.WithMemoryAcquirer(rc), tt.WithThrottle(rc))
	}

	e := &Engine{
		table:   tt.New(ttOpts...),
		pool:    wp,
		rc:      rc,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	if err := e.SetHashSize(ctx, o.hashSizeMB); err != nil {
		wp.Close()
		return nil, err
	}

	return e, nil
}

// Table returns the transposition table for direct probe/store access by
// search workers. The pointer stays valid for the Engine's lifetime, but
// data and write handles are invalidated by SetHashSize and NewGame.
func (e *Engine) Table() *tt.Table {
	return e.table
}

// SetHashSize resizes the table to the requested number of mebibytes,
// discarding all stored data. Maps the "set hash size" engine option.
//
// All search workers must be idle.
func (e *Engine) SetHashSize(ctx context.Context, megabytes int) error {
	if e.closed.Load() {
		return ErrClosed
	}

	start := time.Now()
	err := e.table.Resize(ctx, megabytes)
	e.metrics.RecordResize(megabytes, time.Since(start), err)
	e.logger.LogResize(ctx, megabytes, time.Since(start), err)

	return err
}

// NewGame clears the table in place, retaining the allocation. Maps the
// "start new game" command.
//
// All search workers must be idle.
func (e *Engine) NewGame(ctx context.Context) error {
	if e.closed.Load() {
		return ErrClosed
	}

	start := time.Now()
	e.table.Clear(ctx)
	e.metrics.RecordClear(time.Since(start))
	e.logger.LogClear(ctx, time.Since(start))

	return nil
}

// NewSearch advances the table generation and returns a token identifying
// the search. Call it once per distinct analysis request so entry aging
// stays comparable across searches.
func (e *Engine) NewSearch() Search {
	e.table.NewSearch()

	s := Search{
		ID:         uuid.New(),
		Generation: e.table.Generation(),
	}

	e.metrics.RecordNewSearch()
	e.logger.LogNewSearch(context.Background(), s.ID, s.Generation)

	return s
}

// Hashfull reports the sampled fraction of the table holding data from
// the current search, in parts per thousand. Maps the "hashfull" info
// query.
func (e *Engine) Hashfull() int {
	if e.closed.Load() {
		return 0
	}

	permille := e.table.Hashfull()
	e.metrics.RecordHashfull(permille)
	e.logger.LogHashfull(context.Background(), permille)

	return permille
}

// Close shuts down the worker pool and releases the table memory.
// It is idempotent. All search workers must be idle.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil // Already closed
	}

	err := e.table.Close()
	e.pool.Close()

	return err
}
