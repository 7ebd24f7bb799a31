// Package mmap provides anonymous memory mappings for large off-heap
// allocations.
//
// # Overview
//
// A transposition table can reach many gigabytes. Backing it with an
// anonymous mapping keeps the allocation outside the Go garbage collector's
// scan set and lets us hand the kernel access-pattern hints: transparent
// huge pages reduce TLB pressure for the hashed access pattern, and
// MADV_RANDOM disables useless readahead.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	m.AdviseRandom()
//	m.AdviseHugePages()
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON, madvise(2) hints
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT (hints are no-ops)
//
// Huge-page advise is Linux-only; elsewhere it silently succeeds.
//
// # Thread Safety
//
// Bytes is safe for concurrent use. Close is idempotent and protected by
// atomic operations, but callers must ensure no goroutine touches Bytes()
// after Close() returns.
package mmap
