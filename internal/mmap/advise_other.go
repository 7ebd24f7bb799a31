//go:build !linux

package mmap

// Transparent huge pages are a Linux facility; elsewhere the hint is a no-op.
func osAdviseHugePages(data []byte) error {
	return nil
}
