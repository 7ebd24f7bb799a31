// Package prefetch provides a best-effort cache-line prefetch hint.
package prefetch

import "unsafe"

// Addr hints the CPU to begin loading the cache line containing p.
// It is a portable fallback: the read itself pulls the line into cache
// and triggers the hardware prefetcher. The compiler cannot eliminate
// the load because p is an arbitrary pointer.
//
// The caller must guarantee p points into live, readable memory.
func Addr(p unsafe.Pointer) {
	_ = *(*byte)(p)
}
