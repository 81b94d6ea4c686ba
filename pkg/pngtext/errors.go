package pngtext

import (
	"errors"

	"github.com/joshuapare/pngtext/internal/format"
	"github.com/joshuapare/pngtext/pkg/types"
)

// wrap lifts an internal format error into the public taxonomy.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var kind types.ErrKind
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		kind = types.ErrKindInvalidHeader
	case errors.Is(err, format.ErrNotUTF8), errors.Is(err, format.ErrBadKeyword):
		kind = types.ErrKindEncoding
	case errors.Is(err, format.ErrTooLarge):
		kind = types.ErrKindLengthMismatch
	default:
		kind = types.ErrKindMalformed
	}
	return types.Errorf(kind, err, "pngtext: %s", op)
}

// walkErr reports why a walk ended without reaching IEND.
func walkErr(op string, w *format.Walker) error {
	if err := w.Err(); err != nil {
		return wrap(op, err)
	}
	return wrap(op, format.ErrNoEnd)
}
