//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mmfile

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents together with
// a cleanup func that unmaps it. The slice must not be used after cleanup;
// calling cleanup again returns the first result.
func Map(path string) ([]byte, func() error, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd) // the mapping outlives the descriptor

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return nil, nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	if st.Size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if st.Size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: %s too large to map (%d bytes)", path, st.Size)
	}

	data, err := unix.Mmap(fd, 0, int(st.Size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	// Chunks are walked front to back exactly once.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	var (
		once     sync.Once
		unmapErr error
	)
	cleanup := func() error {
		once.Do(func() { unmapErr = unix.Munmap(data) })
		return unmapErr
	}
	return data, cleanup, nil
}
