package pngtext

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/pngtext/internal/format"
	"github.com/joshuapare/pngtext/pkg/types"
)

// TextEntry is one decoded tEXt keyword/value pair.
type TextEntry struct {
	Keyword string `json:"keyword"`
	Value   string `json:"value"`
}

// RawTextEntry is one tEXt chunk as stored, without any text decoding.
type RawTextEntry struct {
	Offset  int    `json:"offset"` // position of the chunk in the file
	Keyword []byte `json:"keyword"`
	Value   []byte `json:"value"`
}

// Decode returns the value of the first tEXt chunk whose keyword equals
// keyword. Keyword and value must both be valid UTF-8.
func Decode(data []byte, keyword string) (string, error) {
	raw, err := find("decode", data, keyword, true)
	if err != nil {
		return "", err
	}
	value, err := format.DecodeText(raw)
	if err != nil {
		return "", wrap(fmt.Sprintf("decode %q: value", keyword), err)
	}
	return value, nil
}

// DecodeRaw is like Decode but compares keywords byte-for-byte and returns
// the value bytes undecoded. Use it for files written with Latin-1 text; see
// DecodeLatin1.
func DecodeRaw(data []byte, keyword string) ([]byte, error) {
	raw, err := find("decode", data, keyword, false)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(raw), nil
}

// find walks data and returns the value bytes of the first tEXt chunk
// carrying keyword. In strict mode every keyword passed must be UTF-8.
func find(op string, data []byte, keyword string, strict bool) ([]byte, error) {
	if err := format.CheckSignature(data); err != nil {
		return nil, wrap(op, err)
	}
	w := format.NewWalker(data)
	for w.Next() {
		c := w.Chunk()
		if c.IsEnd() {
			return nil, types.Errorf(types.ErrKindNotFound, nil, "pngtext: %s: keyword %q not found", op, keyword)
		}
		if !c.IsText() {
			continue
		}
		k, v, err := format.ParseText(data, c)
		if err != nil {
			return nil, wrap(op, err)
		}
		if strict && !utf8.Valid(k) {
			return nil, wrap(fmt.Sprintf("%s: keyword at offset %d", op, c.Offset), format.ErrNotUTF8)
		}
		if string(k) == keyword {
			return v, nil
		}
	}
	return nil, walkErr(op, w)
}

// Encode replaces all text metadata in data with a single tEXt chunk holding
// keyword and value, inserted directly before IEND. Every existing tEXt chunk
// is removed, whatever its keyword. An empty keyword inserts nothing.
func Encode(data []byte, keyword, value string) ([]byte, error) {
	if err := format.CheckSignature(data); err != nil {
		return nil, wrap("encode", err)
	}
	if err := format.CheckKeyword(keyword); err != nil {
		return nil, wrap("encode", err)
	}
	if !utf8.ValidString(value) {
		return nil, wrap("encode: value", format.ErrNotUTF8)
	}
	if len(keyword)+1+len(value) > format.MaxLength {
		return nil, wrap("encode", format.ErrTooLarge)
	}
	return rewrite("encode", data, []byte(keyword), []byte(value), false)
}

// EncodeRaw is like Encode but stores keyword and value bytes as given,
// without UTF-8 checks. The keyword must still be free of NUL bytes.
func EncodeRaw(data, keyword, value []byte) ([]byte, error) {
	if err := format.CheckSignature(data); err != nil {
		return nil, wrap("encode", err)
	}
	if bytes.IndexByte(keyword, format.KeywordSeparator) >= 0 {
		return nil, wrap("encode: keyword contains NUL", format.ErrBadKeyword)
	}
	if len(keyword)+1+len(value) > format.MaxLength {
		return nil, wrap("encode", format.ErrTooLarge)
	}
	return rewrite("encode", data, keyword, value, false)
}

// Trim removes every tEXt chunk from data and keeps IEND.
func Trim(data []byte) ([]byte, error) {
	return Encode(data, "", "")
}

// rewrite copies data once, dropping every tEXt chunk. At IEND it inserts a
// new tEXt chunk when keyword is non-empty. When dropEnd is set it instead
// truncates the output at IEND, discarding IEND and anything after it, and
// leaves an unterminated stream for Builder.
func rewrite(op string, data, keyword, value []byte, dropEnd bool) ([]byte, error) {
	var chunk []byte
	if len(keyword) > 0 {
		chunk = format.BuildText(keyword, value)
	}
	out := make([]byte, len(data), len(data)+len(chunk))
	copy(out, data)

	w := format.NewWalker(out)
	for w.Next() {
		c := w.Chunk()
		switch {
		case c.IsText():
			w.Remove(c)
		case c.IsEnd():
			if dropEnd {
				// Bytes after IEND would land between the prefix and the
				// streamed chunk, so cut them together with IEND.
				return w.Bytes()[:c.Offset], nil
			}
			if chunk != nil {
				w.Insert(c.Offset, chunk)
			}
			return w.Bytes(), nil
		}
	}
	return nil, walkErr(op, w)
}

// List returns every tEXt entry in file order. It fails with
// ErrInvalidEncoding on the first entry that is not UTF-8; use ListRaw for
// files that store Latin-1.
func List(data []byte) ([]TextEntry, error) {
	raw, err := ListRaw(data)
	if err != nil {
		return nil, err
	}
	out := make([]TextEntry, 0, len(raw))
	for _, e := range raw {
		k, err := format.DecodeText(e.Keyword)
		if err != nil {
			return nil, wrap(fmt.Sprintf("list: keyword at offset %d", e.Offset), err)
		}
		v, err := format.DecodeText(e.Value)
		if err != nil {
			return nil, wrap(fmt.Sprintf("list %q: value", k), err)
		}
		out = append(out, TextEntry{Keyword: k, Value: v})
	}
	return out, nil
}

// ListRaw returns a copy of every tEXt chunk's keyword and value in file order.
func ListRaw(data []byte) ([]RawTextEntry, error) {
	if err := format.CheckSignature(data); err != nil {
		return nil, wrap("list", err)
	}
	var out []RawTextEntry
	w := format.NewWalker(data)
	for w.Next() {
		c := w.Chunk()
		if c.IsEnd() {
			return out, nil
		}
		if !c.IsText() {
			continue
		}
		k, v, err := format.ParseText(data, c)
		if err != nil {
			return nil, wrap("list", err)
		}
		out = append(out, RawTextEntry{Offset: c.Offset, Keyword: bytes.Clone(k), Value: bytes.Clone(v)})
	}
	return nil, walkErr("list", w)
}

// EndChunk returns the canonical IEND chunk, for callers that finish a file
// assembled with a Builder.
func EndChunk() []byte {
	return format.EndChunk()
}
