package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidHeader  ErrKind = iota // input does not start with the PNG signature
	ErrKindMalformed                     // chunk overruns the buffer or IEND is missing
	ErrKindNotFound                      // no tEXt chunk carries the keyword
	ErrKindEncoding                      // keyword or value is not valid text
	ErrKindLengthMismatch                // streamed chunk size differs from the declared size
	ErrKindState                         // operation invalid for the builder's current state
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidHeader:
		return "InvalidHeader"
	case ErrKindMalformed:
		return "MalformedFile"
	case ErrKindNotFound:
		return "KeywordNotFound"
	case ErrKindEncoding:
		return "InvalidEncoding"
	case ErrKindLengthMismatch:
		return "LengthMismatch"
	case ErrKindState:
		return "InvalidState"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so detailed errors still compare
// equal to the sentinels below under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidHeader indicates the buffer lacks the PNG signature.
	ErrInvalidHeader = &Error{Kind: ErrKindInvalidHeader, Msg: "not a PNG file (bad signature)"}
	// ErrMalformed indicates the chunk stream is truncated or never reaches IEND.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed PNG chunk stream"}
	// ErrKeywordNotFound indicates no tEXt chunk carries the requested keyword.
	ErrKeywordNotFound = &Error{Kind: ErrKindNotFound, Msg: "keyword not found"}
	// ErrInvalidEncoding indicates a keyword or value that is not valid text.
	ErrInvalidEncoding = &Error{Kind: ErrKindEncoding, Msg: "invalid text encoding"}
	// ErrLengthMismatch indicates a streamed chunk whose size differs from the declared size.
	ErrLengthMismatch = &Error{Kind: ErrKindLengthMismatch, Msg: "chunk length mismatch"}
	// ErrFinalized indicates a chunk writer was used after Finalize.
	ErrFinalized = &Error{Kind: ErrKindState, Msg: "chunk writer already finalized"}
)

// Errorf builds a detailed *Error of the given kind wrapping cause.
func Errorf(kind ErrKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}
