//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func osAdviseHugePages(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// MADV_HUGEPAGE requires CONFIG_TRANSPARENT_HUGEPAGE; kernels built
	// without it return EINVAL. Either way the mapping still works.
	err := unix.Madvise(data, unix.MADV_HUGEPAGE)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
