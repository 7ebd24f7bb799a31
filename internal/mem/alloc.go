package mem

import (
	"unsafe"
)

// CacheLine is the assumed hardware cache line size in bytes.
const CacheLine = 64

// AllocAligned allocates a byte slice of the given size whose first byte
// sits on a cache-line boundary.
//
// Note: This function allocates slightly more memory than requested to
// ensure alignment. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate by one cache line so an aligned start offset always
	// exists within the buffer.
	buf := make([]byte, size+CacheLine)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (CacheLine - (addr & (CacheLine - 1))) & (CacheLine - 1)

	return buf[offset : offset+uintptr(size)]
}
