// Package bindings adapts the pngtext API to embedding hosts that cannot
// receive Go errors, such as a browser calling into WebAssembly. Each call
// returns a flat Result carrying either the output or an error kind and
// message.
package bindings

import (
	"errors"

	"github.com/joshuapare/pngtext/pkg/pngtext"
	"github.com/joshuapare/pngtext/pkg/types"
)

// Result is the outcome of one host call. Exactly one of Data, Text, or
// Error is meaningful; Kind names the error category when Error is set.
type Result struct {
	Data  []byte
	Text  string
	Kind  string
	Error string
}

// OK reports whether the call succeeded.
func (r Result) OK() bool { return r.Error == "" }

// Decode returns the value stored under keyword.
func Decode(data []byte, keyword string) Result {
	v, err := pngtext.Decode(data, keyword)
	if err != nil {
		return failure(err)
	}
	return Result{Text: v}
}

// Encode replaces all text metadata with keyword=value.
func Encode(data []byte, keyword, value string) Result {
	out, err := pngtext.Encode(data, keyword, value)
	if err != nil {
		return failure(err)
	}
	return Result{Data: out}
}

// Trim removes all text metadata.
func Trim(data []byte) Result {
	out, err := pngtext.Trim(data)
	if err != nil {
		return failure(err)
	}
	return Result{Data: out}
}

func failure(err error) Result {
	r := Result{Kind: "Unknown", Error: err.Error()}
	var typed *types.Error
	if errors.As(err, &typed) {
		r.Kind = typed.Kind.String()
	}
	return r
}

// Stream is a host handle on a streamed tEXt chunk. Hosts call Base once,
// then Append for each fragment, then Finalize, writing every returned Data
// to the output in order.
type Stream struct {
	cw *pngtext.ChunkWriter
}

// Base strips data for a chunk of size value bytes. Result.Data is the
// prefix to write first.
func Base(data []byte, keyword string, size int) (*Stream, Result) {
	prefix, cw, err := pngtext.NewBuilder().Base(data, keyword, size)
	if err != nil {
		return nil, failure(err)
	}
	return &Stream{cw: cw}, Result{Data: prefix}
}

// Append feeds one fragment of the value and returns it as Data.
func (s *Stream) Append(p []byte) Result {
	if _, err := s.cw.Write(p); err != nil {
		return failure(err)
	}
	return Result{Data: p}
}

// Remaining is the number of value bytes still expected.
func (s *Stream) Remaining() int { return s.cw.Remaining() }

// Finalize returns the CRC trailer followed by IEND, completing the file.
func (s *Stream) Finalize() Result {
	trailer, err := s.cw.Finalize()
	if err != nil {
		return failure(err)
	}
	return Result{Data: append(trailer, pngtext.EndChunk()...)}
}
