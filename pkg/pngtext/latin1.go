package pngtext

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pngtext/pkg/types"
)

// DecodeLatin1 converts ISO-8859-1 text to UTF-8. The PNG specification
// defines tEXt as Latin-1, so files from strict encoders may need this
// instead of the UTF-8 path of Decode.
func DecodeLatin1(raw []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", types.Errorf(types.ErrKindEncoding, err, "pngtext: latin-1 decode")
	}
	return string(out), nil
}

// EncodeLatin1 converts UTF-8 text to ISO-8859-1. Runes outside Latin-1
// fail with ErrInvalidEncoding.
func EncodeLatin1(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, types.Errorf(types.ErrKindEncoding, err, "pngtext: latin-1 encode %q", s)
	}
	return out, nil
}
