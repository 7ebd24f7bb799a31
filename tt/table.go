package tt

import (
	"context"
	"math/bits"
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/ttgo/internal/mem"
	"github.com/hupe1980/ttgo/internal/mmap"
	"github.com/hupe1980/ttgo/internal/prefetch"
)

const (
	// clusterSize is the number of records sharing one addressed slot.
	clusterSize = 3

	// clusterBytes is the size of one cluster including padding. One
	// cluster per cache line is a load-bearing performance assumption:
	// a single probe touches exactly one line.
	clusterBytes = 32
)

// Cluster is the unit addressed by a hashed index: a fixed set of records
// plus trailing padding up to the cache line size.
type Cluster struct {
	entries [clusterSize]Entry
	_       [clusterBytes - clusterSize*unsafe.Sizeof(Entry{})]byte
}

// Build-time layout assertions. A drifting cluster size silently wrecks
// probe performance; the age arithmetic requires the generation counter
// and the packed stamp to share a byte width.
var (
	_ [clusterBytes - unsafe.Sizeof(Cluster{})]byte
	_ [unsafe.Sizeof(Cluster{}) - clusterBytes]byte
	_ [unsafe.Sizeof(Table{}.generation8) - unsafe.Sizeof(Entry{}.genBound8)]byte
	_ [unsafe.Sizeof(Entry{}.genBound8) - unsafe.Sizeof(Table{}.generation8)]byte
)

// Executor runs a batch of independent tasks on a worker pool and blocks
// until all of them finish. The table uses it to parallelize bulk zeroing;
// it never spawns goroutines of its own.
type Executor interface {
	Execute(ctx context.Context, tasks []func()) error
	NumWorkers() int
}

// MemoryAcquirer is an interface for acquiring memory from a budget.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

// Throttle limits the byte throughput of bulk maintenance work.
type Throttle interface {
	AcquireIO(ctx context.Context, n int) error
}

// Option is a configuration option for Table.
type Option func(*Table)

// WithExecutor injects the worker pool used to parallelize Clear on large
// tables. Without one, Clear falls back to an errgroup over GOMAXPROCS.
func WithExecutor(exec Executor) Option {
	return func(t *Table) {
		t.exec = exec
	}
}

// WithMemoryAcquirer makes Resize reserve the backing allocation against
// the given budget and release it again on the next Resize or Close.
func WithMemoryAcquirer(a MemoryAcquirer) Option {
	return func(t *Table) {
		t.acquirer = a
	}
}

// WithThrottle rate-limits the zeroing performed by Clear. Useful when
// multi-gigabyte clears would otherwise saturate memory bandwidth that
// concurrent engine work needs.
func WithThrottle(th Throttle) Option {
	return func(t *Table) {
		t.throttle = th
	}
}

// WithAgeWeight sets how many depth units one generation of age costs a
// record in replacement decisions. Higher values evict stale records more
// aggressively. The default is 8.
func WithAgeWeight(w int) Option {
	return func(t *Table) {
		if w > 0 {
			t.ageWeight = w
		}
	}
}

// WithHashfullSample sets how many clusters Hashfull inspects. The sample
// is a fixed prefix so the cost stays bounded regardless of table size.
// The default is 1000.
func WithHashfullSample(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.sampleClusters = n
		}
	}
}

// Table is a contiguous array of clusters over an exclusively-owned
// backing allocation, plus a single table-wide generation counter.
//
// A Table is constructed empty and must be Resized before first use. All
// concurrency caveats from the package documentation apply.
type Table struct {
	clusters     []Cluster
	clusterCount uint64

	// generation8 advances by generationDelta per NewSearch so its low
	// bits never collide with the pv/bound bits of genBound8.
	generation8 uint8

	backing  *mmap.Mapping // nil when the heap fallback is in use
	heap     []byte
	reserved int64

	exec           Executor
	acquirer       MemoryAcquirer
	throttle       Throttle
	ageWeight      int
	sampleClusters int
}

// New creates an empty table. Resize must be called before the first
// Probe.
func New(opts ...Option) *Table {
	t := &Table{
		ageWeight:      8,
		sampleClusters: 1000,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Resize discards all stored data and reallocates the table to hold as
// many clusters as fit into the requested number of mebibytes, with a
// minimum of one cluster. The fresh allocation is cleared before Resize
// returns.
//
// Preconditions: no probe or save may be in flight; every Writer obtained
// earlier is invalidated. The only error paths are context cancellation
// while waiting on the memory budget; an allocation the OS cannot satisfy
// is fatal, as the engine cannot run without its cache.
func (t *Table) Resize(ctx context.Context, megabytes int) error {
	if megabytes < 0 {
		megabytes = 0
	}

	count := uint64(megabytes) << 20 / clusterBytes
	if count < 1 {
		count = 1
	}
	size := int64(count * clusterBytes)

	t.free()

	if t.acquirer != nil {
		if err := t.acquirer.AcquireMemory(ctx, size); err != nil {
			return err
		}
		t.reserved = size
	}

	var base *byte
	if m, err := mmap.MapAnon(int(size)); err == nil {
		// Advisory hints; the table works the same without them.
		_ = m.AdviseHugePages()
		_ = m.AdviseRandom()
		t.backing = m
		base = &m.Bytes()[0]
	} else {
		// Heap fallback keeps the cache-line alignment guarantee. If
		// even this fails the runtime aborts: allocation failure is
		// fatal by design.
		t.heap = mem.AllocAligned(int(size))
		base = &t.heap[0]
	}

	t.clusters = unsafe.Slice((*Cluster)(unsafe.Pointer(base)), count)
	t.clusterCount = count

	t.Clear(ctx)

	return nil
}

// Close releases the backing allocation. The table returns to its
// unsized state and may be Resized again.
func (t *Table) Close() error {
	t.free()
	return nil
}

func (t *Table) free() {
	if t.backing != nil {
		_ = t.backing.Close()
		t.backing = nil
	}
	t.heap = nil
	t.clusters = nil
	t.clusterCount = 0

	if t.reserved > 0 {
		if t.acquirer != nil {
			t.acquirer.ReleaseMemory(t.reserved)
		}
		t.reserved = 0
	}
}

// parallelClearThreshold is the cluster count below which Clear runs
// single-threaded; fan-out overhead dominates for small tables.
const parallelClearThreshold = 1 << 16 // 2 MiB worth of clusters

// Clear zeroes every record in place. The allocation is retained.
//
// Large tables are split into contiguous chunks, one per worker, zeroed
// independently with no shared state (the ranges are disjoint). Clear
// blocks until all chunks are done and always runs to completion: if the
// executor rejects work the zeroing happens inline instead.
//
// The same quiescence precondition as Resize applies.
func (t *Table) Clear(ctx context.Context) {
	n := len(t.clusters)
	if n == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if t.exec != nil {
		workers = t.exec.NumWorkers()
	}

	if workers <= 1 || n < parallelClearThreshold {
		t.zero(ctx, t.clusters)
		return
	}

	chunk := (n + workers - 1) / workers
	tasks := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		part := t.clusters[start:end]
		tasks = append(tasks, func() {
			t.zero(ctx, part)
		})
	}

	if t.exec != nil {
		if err := t.exec.Execute(ctx, tasks); err == nil {
			return
		}
		// Executor unavailable (e.g. closed pool): fall through.
	} else {
		g := new(errgroup.Group)
		for _, task := range tasks {
			task := task
			g.Go(func() error {
				task()
				return nil
			})
		}
		_ = g.Wait()
		return
	}

	t.zero(ctx, t.clusters)
}

// throttleChunk is the granularity at which zeroing work is metered
// against the throttle: 1 MiB per acquisition.
const throttleChunk = (1 << 20) / clusterBytes

func (t *Table) zero(ctx context.Context, part []Cluster) {
	th := t.throttle
	if th == nil {
		clear(part)
		return
	}

	for start := 0; start < len(part); start += throttleChunk {
		end := min(start+throttleChunk, len(part))
		if th != nil {
			if err := th.AcquireIO(ctx, (end-start)*clusterBytes); err != nil {
				// Clear must run to completion; finish unthrottled.
				th = nil
			}
		}
		clear(part[start:end])
	}
}

// NewSearch advances the generation counter by one step, wrapping modulo
// the generation field width. Call it once per independent search so that
// entry ages stay comparable across searches.
func (t *Table) NewSearch() {
	t.generation8 += generationDelta // low bits stay zero
}

// Generation returns the current generation stamp.
func (t *Table) Generation() uint8 {
	return t.generation8
}

// Hashfull approximates how full the table got during the current search,
// in parts per thousand. It samples a fixed prefix of clusters and counts
// records carrying the current generation stamp.
func (t *Table) Hashfull() int {
	sample := t.sampleClusters
	if uint64(sample) > t.clusterCount {
		sample = int(t.clusterCount)
	}
	if sample == 0 {
		return 0
	}

	cnt := 0
	for i := 0; i < sample; i++ {
		for j := range t.clusters[i].entries {
			e := &t.clusters[i].entries[j]
			if !e.empty() && e.genBound8&generationMask == t.generation8 {
				cnt++
			}
		}
	}

	return cnt * 1000 / (sample * clusterSize)
}

// clusterIndex maps a key onto [0, clusterCount) with a high-bits
// multiplicative hash: the key is treated as a 64-bit fraction of the key
// space and scaled by the cluster count. Uniform for any count, no
// power-of-two requirement, branch-free.
func (t *Table) clusterIndex(key uint64) uint64 {
	hi, _ := bits.Mul64(key, t.clusterCount)
	return hi
}

// Prefetch hints the CPU to load the cluster addressed by key. Callers
// that know a probe is coming can issue it early to hide memory latency.
// Purely an optimization hook; it has no observable effect.
func (t *Table) Prefetch(key uint64) {
	if t.clusterCount == 0 {
		return
	}
	prefetch.Addr(unsafe.Pointer(&t.clusters[t.clusterIndex(key)]))
}
