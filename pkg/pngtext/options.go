package pngtext

// FileOptions controls the file-level helpers.
type FileOptions struct {
	// OutputPath writes the result here instead of replacing the input.
	OutputPath string

	// CreateBackup copies the input to <path>.bak before replacing it.
	// Ignored when OutputPath is set.
	CreateBackup bool

	// Sync flushes the output to disk before it is renamed into place.
	// Default: true
	Sync bool
}

// DefaultFileOptions returns the options used when nil is passed.
func DefaultFileOptions() *FileOptions {
	return &FileOptions{Sync: true}
}

func (o *FileOptions) target(path string) string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return path
}
