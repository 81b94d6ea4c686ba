package format

import (
	"bytes"
	"fmt"
)

// CheckSignature reports whether b begins with the eight-byte PNG signature.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize {
		return fmt.Errorf("png header: %d bytes: %w", len(b), ErrSignatureMismatch)
	}
	if !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return fmt.Errorf("png header: % x: %w", b[:SignatureSize], ErrSignatureMismatch)
	}
	return nil
}
