//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}

func osAdviseRandom(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Advisory only. EINVAL (e.g. alignment quirks) is not worth
	// surfacing to the caller.
	err := unix.Madvise(data, unix.MADV_RANDOM)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
