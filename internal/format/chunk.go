package format

import (
	"fmt"
	"math"
	"slices"

	"github.com/joshuapare/pngtext/internal/buf"
)

// Chunk describes one chunk of the stream by position. It does not copy any
// bytes; slice the owning buffer with the offsets to read the contents.
type Chunk struct {
	Offset int            // position of the length field
	Length uint32         // declared payload length
	Type   [TypeSize]byte // four-byte type tag
	End    int            // Offset + Length + ChunkOverhead
}

// IsText reports whether c is a tEXt chunk.
func (c Chunk) IsText() bool { return c.Type == TextType }

// IsEnd reports whether c is the IEND trailer.
func (c Chunk) IsEnd() bool { return c.Type == EndType }

// TypeName returns the type tag as a string.
func (c Chunk) TypeName() string { return string(c.Type[:]) }

// PayloadStart is the offset of the first payload byte.
func (c Chunk) PayloadStart() int { return c.Offset + PayloadOffset }

// PayloadEnd is the offset just past the payload, where the CRC begins.
func (c Chunk) PayloadEnd() int { return c.End - CRCSize }

// ParseChunk decodes the chunk header at off and checks that the whole chunk,
// CRC included, lies inside b. The CRC itself is not verified.
func ParseChunk(b []byte, off int) (Chunk, error) {
	hdr, ok := buf.Slice(b, off, ChunkHeaderSize)
	if !ok {
		return Chunk{}, fmt.Errorf("chunk at %d: header: %w", off, ErrTruncated)
	}
	length := buf.U32BE(hdr)
	if uint64(length) > uint64(math.MaxInt-ChunkOverhead) {
		return Chunk{}, fmt.Errorf("chunk at %d: length %d: %w", off, length, ErrTruncated)
	}
	end, err := buf.CheckSpan(len(b), off, int(length)+ChunkOverhead)
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk at %d: %v: %w", off, err, ErrTruncated)
	}
	c := Chunk{Offset: off, Length: length, End: end}
	copy(c.Type[:], hdr[TypeOffset:])
	return c, nil
}

// Walker iterates the chunk stream of a PNG buffer, starting right after the
// signature and stopping after IEND. The walker owns the buffer it was given:
// Remove and Insert edit it in place and keep the cursor consistent, so
// callers can mutate the stream while walking it.
//
//	w := format.NewWalker(data)
//	for w.Next() {
//	    c := w.Chunk()
//	    ...
//	}
//	if err := w.Err(); err != nil {
//	    return err
//	}
//
// Reaching the end of the buffer without seeing IEND is an error.
type Walker struct {
	b    []byte
	off  int
	cur  Chunk
	done bool
	err  error
}

// NewWalker returns a walker positioned at the first chunk of b. The caller
// is expected to have validated the signature already.
func NewWalker(b []byte) *Walker {
	return &Walker{b: b, off: SignatureSize}
}

// Next advances to the next chunk. It returns false once IEND has been
// consumed or when the stream is malformed; check Err to tell them apart.
func (w *Walker) Next() bool {
	if w.done || w.err != nil {
		return false
	}
	if w.off >= len(w.b) {
		w.err = fmt.Errorf("walk ended at offset %d: %w", w.off, ErrNoEnd)
		return false
	}
	c, err := ParseChunk(w.b, w.off)
	if err != nil {
		w.err = err
		return false
	}
	w.cur = c
	w.off = c.End
	if c.IsEnd() {
		w.done = true
	}
	return true
}

// Chunk returns the chunk produced by the last successful call to Next.
func (w *Walker) Chunk() Chunk { return w.cur }

// Err returns the error that stopped the walk, if any.
func (w *Walker) Err() error { return w.err }

// Bytes returns the (possibly edited) buffer.
func (w *Walker) Bytes() []byte { return w.b }

// Remove deletes the current chunk from the buffer. The next call to Next
// resumes at the chunk that followed it.
func (w *Walker) Remove(c Chunk) {
	w.b = Remove(w.b, c.Offset, c.End)
	switch {
	case w.off >= c.End:
		w.off -= c.End - c.Offset
	case w.off > c.Offset:
		w.off = c.Offset
	}
}

// Insert splices data into the buffer at off. If the cursor is at or past
// off it moves with the bytes it pointed at.
func (w *Walker) Insert(off int, data []byte) {
	w.b = Insert(w.b, off, data)
	if w.off >= off {
		w.off += len(data)
	}
}

// Remove deletes the half-open range [start, end) from b, shifting the tail
// left. No other bytes are touched.
func Remove(b []byte, start, end int) []byte {
	return slices.Delete(b, start, end)
}

// Insert splices data into b at off, shifting the tail right.
func Insert(b []byte, off int, data []byte) []byte {
	return slices.Insert(b, off, data...)
}
