//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package mmfile

import "os"

// Map reads the entire file on platforms without a mapping here.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
