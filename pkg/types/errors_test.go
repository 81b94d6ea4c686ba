package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	cause := errors.New("chunk at 33 overruns buffer")
	err := Errorf(ErrKindMalformed, cause, "decode %q", "Title")

	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrInvalidHeader)
	require.Equal(t, `decode "Title": chunk at 33 overruns buffer`, err.Error())
}

func TestErrorIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("read cover.png: %w", Errorf(ErrKindNotFound, nil, "keyword %q", "Author"))
	require.ErrorIs(t, wrapped, ErrKeywordNotFound)

	var typed *Error
	require.ErrorAs(t, wrapped, &typed)
	require.Equal(t, ErrKindNotFound, typed.Kind)
}

func TestErrKindString(t *testing.T) {
	tests := map[ErrKind]string{
		ErrKindInvalidHeader:  "InvalidHeader",
		ErrKindMalformed:      "MalformedFile",
		ErrKindNotFound:       "KeywordNotFound",
		ErrKindEncoding:       "InvalidEncoding",
		ErrKindLengthMismatch: "LengthMismatch",
		ErrKindState:          "InvalidState",
		ErrKind(42):           "ErrKind(42)",
	}
	for kind, want := range tests {
		require.Equal(t, want, kind.String())
	}
}

func TestNilError(t *testing.T) {
	var e *Error
	require.Equal(t, "<nil>", e.Error())
}
