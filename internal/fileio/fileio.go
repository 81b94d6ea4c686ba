// Package fileio writes output files atomically: the new content goes to a
// temporary file in the destination directory, is flushed to disk, and is
// then renamed over the destination.
package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the destination name by Backup.
const BackupSuffix = ".bak"

// WriteAtomic streams the output of fn into path. When durable is true the
// data is synced before the rename. On any error the destination is left as
// it was and the temporary file is removed.
func WriteAtomic(path string, durable bool, fn func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("fileio: create temp: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	bw := bufio.NewWriter(tmp)
	if err = fn(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("fileio: flush: %w", err)
	}
	if durable {
		if err = syncFile(tmp); err != nil {
			return fmt.Errorf("fileio: sync: %w", err)
		}
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("fileio: chmod: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fileio: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("fileio: rename: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte, durable bool) error {
	return WriteAtomic(path, durable, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Backup copies path to path+BackupSuffix, replacing any previous backup.
func Backup(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("fileio: backup: %w", err)
	}
	defer src.Close()
	return WriteAtomic(path+BackupSuffix, false, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	})
}
