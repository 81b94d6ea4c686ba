// Package types defines the error taxonomy shared by the pngtext packages.
//
// Every failure surfaced by the public API is a *Error whose Kind names a
// stable category, so callers can branch on intent rather than text:
//
//	v, err := pngtext.Decode(data, "Title")
//	if errors.Is(err, types.ErrKeywordNotFound) {
//	    // no such keyword
//	}
//
// This package has no dependencies beyond the standard library.
package types
