package pngtext

import (
	"hash"
	"hash/crc32"

	"github.com/joshuapare/pngtext/internal/buf"
	"github.com/joshuapare/pngtext/internal/format"
	"github.com/joshuapare/pngtext/pkg/types"
)

// Builder starts the streamed construction of a single tEXt chunk. Its only
// operation is Base; the appending and finalizing stages live on the
// ChunkWriter that Base returns, so they cannot be reached before a base
// buffer exists.
//
// Builder and ChunkWriter are not safe for concurrent use.
type Builder struct {
	based bool
}

// NewBuilder returns a Builder ready for Base.
func NewBuilder() *Builder {
	return &Builder{}
}

// Base prepares data for a streamed tEXt chunk of size value bytes. It
// strips every tEXt chunk and the IEND trailer, then returns that prefix
// followed by the new chunk's length field, type tag, keyword, and NUL.
//
// The caller writes exactly size value bytes after the prefix, feeding each
// fragment through the returned ChunkWriter, then appends the CRC from
// Finalize and finally EndChunk(). A Builder can be based only once.
func (b *Builder) Base(data []byte, keyword string, size int) ([]byte, *ChunkWriter, error) {
	if b.based {
		return nil, nil, types.Errorf(types.ErrKindState, nil, "pngtext: base: builder already used")
	}
	if err := format.CheckSignature(data); err != nil {
		return nil, nil, wrap("base", err)
	}
	if keyword == "" {
		return nil, nil, wrap("base: empty keyword", format.ErrBadKeyword)
	}
	if err := format.CheckKeyword(keyword); err != nil {
		return nil, nil, wrap("base", err)
	}
	if size < 0 {
		return nil, nil, types.Errorf(types.ErrKindLengthMismatch, nil, "pngtext: base: negative size %d", size)
	}
	header := format.TextHeader([]byte(keyword))
	if size > format.MaxLength-(len(header)-format.TypeSize) {
		return nil, nil, wrap("base", format.ErrTooLarge)
	}

	stripped, err := rewrite("base", data, nil, nil, true)
	if err != nil {
		return nil, nil, err
	}

	cw := &ChunkWriter{
		crc:      crc32.NewIEEE(),
		expected: len(header) + size + format.CRCSize,
		written:  len(header),
		offset:   len(stripped),
	}
	cw.crc.Write(header)

	prefix := buf.AppendU32BE(stripped, uint32(cw.expected-format.ChunkHeaderSize))
	prefix = append(prefix, header...)
	b.based = true
	return prefix, cw, nil
}

// ChunkWriter tracks the running CRC32 and byte count of a streamed tEXt
// chunk. It also implements io.Writer with the same effect as AppendBytes.
type ChunkWriter struct {
	crc      hash.Hash32
	expected int // type + keyword + NUL + value + CRC
	written  int
	offset   int
	done     bool
}

// Offset is the position of the new chunk's length field in the prefix
// returned by Base.
func (w *ChunkWriter) Offset() int { return w.offset }

// Remaining is the number of value bytes still expected.
func (w *ChunkWriter) Remaining() int {
	return w.expected - format.CRCSize - w.written
}

// AppendText feeds s into the chunk and returns its bytes for the caller to
// append to the output. After Finalize it returns nil.
func (w *ChunkWriter) AppendText(s string) []byte {
	return w.AppendBytes([]byte(s))
}

// AppendBytes feeds p into the chunk and returns it unchanged for the caller
// to append to the output. After Finalize it returns nil and feeds nothing.
func (w *ChunkWriter) AppendBytes(p []byte) []byte {
	if w.done {
		return nil
	}
	w.crc.Write(p)
	w.written += len(p)
	return p
}

// Write implements io.Writer.
func (w *ChunkWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, types.ErrFinalized
	}
	w.AppendBytes(p)
	return len(p), nil
}

// Finalize checks that the streamed size matches the size declared to Base
// and returns the four-byte CRC trailer. It may be called once.
func (w *ChunkWriter) Finalize() ([]byte, error) {
	if w.done {
		return nil, types.ErrFinalized
	}
	w.done = true
	total := w.written + format.CRCSize
	if total != w.expected {
		return nil, types.Errorf(types.ErrKindLengthMismatch, nil,
			"pngtext: finalize: chunk is %d bytes, declared %d (%+d value bytes)",
			total, w.expected, total-w.expected)
	}
	return buf.AppendU32BE(make([]byte, 0, format.CRCSize), w.crc.Sum32()), nil
}
