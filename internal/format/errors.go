package format

import "errors"

var (
	// ErrSignatureMismatch indicates the buffer does not start with the PNG signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates a chunk extends past the end of the buffer.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNoEnd indicates the chunk stream ran out before an IEND chunk.
	ErrNoEnd = errors.New("format: missing IEND chunk")
	// ErrNoSeparator indicates a tEXt payload without the NUL keyword terminator.
	ErrNoSeparator = errors.New("format: tEXt payload has no keyword separator")
	// ErrNotUTF8 indicates text bytes that are not valid UTF-8.
	ErrNotUTF8 = errors.New("format: invalid UTF-8")
	// ErrTooLarge indicates a payload longer than MaxLength.
	ErrTooLarge = errors.New("format: chunk payload too large")
	// ErrBadKeyword indicates a keyword that cannot be stored in a tEXt chunk.
	ErrBadKeyword = errors.New("format: invalid keyword")
)
