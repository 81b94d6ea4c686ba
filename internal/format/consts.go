// Package format houses the low-level byte handling for the PNG chunk stream:
// signature checks, chunk traversal, and the tEXt chunk codec. It knows
// nothing about the public API so higher-level packages can decide how
// errors are surfaced.
//
// A chunk is laid out as (all integers big-endian):
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x00    4    Payload length L
//	 0x04    4    Type tag (ASCII, e.g. "tEXt")
//	 0x08    L    Payload
//	 0x08+L  4    CRC32 over type tag and payload
package format

// Signature is the eight-byte header every PNG file starts with.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

var (
	// TextType is the tag of an uncompressed text chunk.
	TextType = [TypeSize]byte{'t', 'E', 'X', 't'}

	// EndType marks the image trailer. Traversal never reads past it.
	EndType = [TypeSize]byte{'I', 'E', 'N', 'D'}
)

const (
	// SignatureSize is the number of bytes in the PNG signature.
	SignatureSize = 8

	// LengthSize is the size of the chunk length field.
	LengthSize = 4

	// TypeSize is the size of the chunk type tag.
	TypeSize = 4

	// CRCSize is the size of the trailing CRC32.
	CRCSize = 4

	// ChunkHeaderSize covers the length field and type tag.
	ChunkHeaderSize = LengthSize + TypeSize

	// ChunkOverhead is every byte of a chunk that is not payload.
	ChunkOverhead = ChunkHeaderSize + CRCSize

	// TypeOffset is the position of the type tag relative to the chunk start.
	TypeOffset = LengthSize

	// PayloadOffset is the position of the payload relative to the chunk start.
	PayloadOffset = ChunkHeaderSize

	// KeywordSeparator terminates the keyword inside a tEXt payload.
	KeywordSeparator = 0x00

	// MaxLength is the largest payload length a chunk may declare.
	MaxLength = 1<<31 - 1
)

// endChunk is the canonical zero-length IEND chunk; AE 42 60 82 is CRC32("IEND").
var endChunk = [ChunkOverhead]byte{
	0x00, 0x00, 0x00, 0x00,
	'I', 'E', 'N', 'D',
	0xAE, 0x42, 0x60, 0x82,
}

// EndChunk returns a fresh copy of the canonical IEND chunk.
func EndChunk() []byte {
	out := make([]byte, ChunkOverhead)
	copy(out, endChunk[:])
	return out
}
