package format

import (
	"errors"
	"testing"

	"github.com/joshuapare/pngtext/internal/testutil"
)

func TestCheckSignatureSuccess(t *testing.T) {
	if err := CheckSignature(testutil.MinimalPNG()); err != nil {
		t.Fatalf("CheckSignature: %v", err)
	}
}

func TestCheckSignatureErrors(t *testing.T) {
	if err := CheckSignature(Signature[:7]); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("short buffer: got %v", err)
	}
	for i := range SignatureSize {
		b := testutil.MinimalPNG()
		b[i] ^= 0x01
		if err := CheckSignature(b); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("byte %d flipped: got %v", i, err)
		}
	}
}

func TestEndChunk(t *testing.T) {
	got := EndChunk()
	want := testutil.IEND()
	if string(got) != string(want) {
		t.Fatalf("EndChunk=% x want % x", got, want)
	}
	got[0] = 0xff
	if endChunk[0] != 0 {
		t.Fatalf("EndChunk must return a copy")
	}
}
