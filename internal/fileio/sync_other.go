//go:build !linux && !freebsd && !darwin && !windows

package fileio

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
