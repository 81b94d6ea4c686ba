//go:build windows

package fileio

import (
	"os"

	"golang.org/x/sys/windows"
)

func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
