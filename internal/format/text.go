package format

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/pngtext/internal/buf"
)

// ParseText splits the payload of the tEXt chunk c into its keyword and value.
// Only the first NUL separates them; the value may contain further NULs. The
// returned slices alias b.
func ParseText(b []byte, c Chunk) (keyword, value []byte, err error) {
	payload := b[c.PayloadStart():c.PayloadEnd()]
	i := bytes.IndexByte(payload, KeywordSeparator)
	if i < 0 {
		return nil, nil, fmt.Errorf("tEXt at %d: %w", c.Offset, ErrNoSeparator)
	}
	return payload[:i], payload[i+1:], nil
}

// DecodeText converts raw text bytes to a string, rejecting invalid UTF-8.
func DecodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrNotUTF8
	}
	return string(raw), nil
}

// CheckKeyword validates a keyword for writing. An empty keyword is allowed
// here; callers decide what it means.
func CheckKeyword(keyword string) error {
	if strings.IndexByte(keyword, KeywordSeparator) >= 0 {
		return fmt.Errorf("keyword %q contains NUL: %w", keyword, ErrBadKeyword)
	}
	if !utf8.ValidString(keyword) {
		return fmt.Errorf("keyword: %w", ErrNotUTF8)
	}
	return nil
}

// TextHeader returns the type tag, keyword and separator: the bytes every
// tEXt CRC starts with.
func TextHeader(keyword []byte) []byte {
	out := make([]byte, 0, TypeSize+len(keyword)+1)
	out = append(out, TextType[:]...)
	out = append(out, keyword...)
	return append(out, KeywordSeparator)
}

// BuildText encodes a complete tEXt chunk: length, type, keyword, NUL, value
// and the CRC32 of everything after the length field.
func BuildText(keyword, value []byte) []byte {
	n := len(keyword) + 1 + len(value)
	out := make([]byte, 0, n+ChunkOverhead)
	out = buf.AppendU32BE(out, uint32(n))
	out = append(out, TextType[:]...)
	out = append(out, keyword...)
	out = append(out, KeywordSeparator)
	out = append(out, value...)
	return buf.AppendU32BE(out, crc32.ChecksumIEEE(out[LengthSize:]))
}
