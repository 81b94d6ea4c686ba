package pngtext

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/pngtext/internal/fileio"
	"github.com/joshuapare/pngtext/internal/mmfile"
)

// GetFile returns the value stored under keyword in the PNG at path.
func GetFile(path, keyword string) (string, error) {
	var value string
	err := withFile(path, func(data []byte) error {
		var err error
		value, err = Decode(data, keyword)
		return err
	})
	return value, err
}

// ListFile returns every tEXt chunk of the PNG at path, undecoded.
func ListFile(path string) ([]RawTextEntry, error) {
	var entries []RawTextEntry
	err := withFile(path, func(data []byte) error {
		var err error
		entries, err = ListRaw(data)
		return err
	})
	return entries, err
}

// SetFile replaces all text metadata of the PNG at path with keyword=value.
func SetFile(path, keyword, value string, opts *FileOptions) error {
	return transformFile(path, opts, func(data []byte) ([]byte, error) {
		return Encode(data, keyword, value)
	})
}

// SetFileRaw is SetFile for keywords and values that are already encoded,
// for example with EncodeLatin1.
func SetFileRaw(path string, keyword, value []byte, opts *FileOptions) error {
	return transformFile(path, opts, func(data []byte) ([]byte, error) {
		return EncodeRaw(data, keyword, value)
	})
}

// StripFile removes all text metadata from the PNG at path.
func StripFile(path string, opts *FileOptions) error {
	return transformFile(path, opts, Trim)
}

// SetFileFrom is SetFile for large values: it streams exactly size bytes
// from r into the new chunk through a Builder, so the value is never held
// in memory. If r yields a different number of bytes the output is not
// written and the error matches types.ErrLengthMismatch.
func SetFileFrom(path, keyword string, r io.Reader, size int, opts *FileOptions) error {
	if opts == nil {
		opts = DefaultFileOptions()
	}
	var prefix []byte
	var cw *ChunkWriter
	err := withFile(path, func(data []byte) error {
		var err error
		prefix, cw, err = NewBuilder().Base(data, keyword, size)
		return err
	})
	if err != nil {
		return err
	}
	if err := backup(path, opts); err != nil {
		return err
	}
	return fileio.WriteAtomic(opts.target(path), opts.Sync, func(w io.Writer) error {
		if _, err := w.Write(prefix); err != nil {
			return err
		}
		if _, err := io.Copy(io.MultiWriter(w, cw), r); err != nil {
			return fmt.Errorf("pngtext: stream value: %w", err)
		}
		trailer, err := cw.Finalize()
		if err != nil {
			return err
		}
		if _, err := w.Write(trailer); err != nil {
			return err
		}
		_, err = w.Write(EndChunk())
		return err
	})
}

// withFile maps path for the duration of fn. fn must not retain data.
func withFile(path string, fn func(data []byte) error) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("png file not found: %s: %w", path, err)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer cleanup()
	return fn(data)
}

func transformFile(path string, opts *FileOptions, fn func([]byte) ([]byte, error)) error {
	if opts == nil {
		opts = DefaultFileOptions()
	}
	var out []byte
	err := withFile(path, func(data []byte) error {
		var err error
		out, err = fn(data)
		return err
	})
	if err != nil {
		return err
	}
	if err := backup(path, opts); err != nil {
		return err
	}
	return fileio.WriteFile(opts.target(path), out, opts.Sync)
}

func backup(path string, opts *FileOptions) error {
	if !opts.CreateBackup || opts.OutputPath != "" {
		return nil
	}
	if err := fileio.Backup(path); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	return nil
}
