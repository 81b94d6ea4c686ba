/*
Package pngtext reads, writes, and strips tEXt metadata in PNG files.

Every operation takes the whole file as a byte slice, walks its chunk stream
from just after the signature up to IEND, and either returns a value or a new
buffer. The input slice is never modified. Pixel data and all chunk types
other than tEXt and IEND pass through untouched.

# Quick Start

Read a value:

	title, err := pngtext.Decode(data, "Title")

Replace all text metadata with a single entry:

	out, err := pngtext.Encode(data, "Title", "Sunset over the bay")

Remove all text metadata:

	out, err := pngtext.Trim(data)

# Encode Semantics

Encode removes every existing tEXt chunk, whatever its keyword, and inserts
the new chunk directly before IEND. An empty keyword inserts nothing, which
makes Trim(b) the same as Encode(b, "", "").

# Streaming Large Values

When a value is too large to hold twice, or arrives in pieces, use a Builder.
Base strips the file, drops its IEND, and returns the prefix ending in the
new chunk's header. The caller then streams the value, appends the CRC
returned by Finalize, and re-appends IEND:

	prefix, cw, err := pngtext.NewBuilder().Base(data, "Comment", size)
	if err != nil {
	    return err
	}
	out.Write(prefix)
	io.Copy(io.MultiWriter(out, cw), src) // exactly size bytes
	trailer, err := cw.Finalize()
	if err != nil {
	    return err // LengthMismatch when src was not size bytes
	}
	out.Write(trailer)
	out.Write(pngtext.EndChunk())

# Error Handling

All errors are *types.Error values; compare with errors.Is against the
sentinels in package types (ErrInvalidHeader, ErrMalformed,
ErrKeywordNotFound, ErrInvalidEncoding, ErrLengthMismatch). No partial
buffer is ever returned alongside an error.

CRCs are computed on write only; existing chunks are not verified on read.
*/
package pngtext
