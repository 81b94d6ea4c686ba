// Package testutil builds PNG fixtures for tests. It deliberately does not
// import internal/format so the format package can use it from its own tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// Signature is the PNG file signature.
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk encodes a chunk with a correct length field and CRC.
func Chunk(typ string, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+12)
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, typ...)
	out = append(out, payload...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(out[4:]))
}

// TextChunk encodes a tEXt chunk for keyword and value.
func TextChunk(keyword, value string) []byte {
	payload := make([]byte, 0, len(keyword)+1+len(value))
	payload = append(payload, keyword...)
	payload = append(payload, 0)
	payload = append(payload, value...)
	return Chunk("tEXt", payload)
}

// IHDR encodes an IHDR chunk for an 8-bit greyscale image of the given size.
func IHDR(width, height uint32) []byte {
	payload := make([]byte, 13)
	binary.BigEndian.PutUint32(payload[0:], width)
	binary.BigEndian.PutUint32(payload[4:], height)
	payload[8] = 8 // bit depth
	return Chunk("IHDR", payload)
}

// IEND encodes the trailer chunk.
func IEND() []byte { return Chunk("IEND", nil) }

// PNG concatenates the signature and the given chunks.
func PNG(chunks ...[]byte) []byte {
	out := bytes.Clone(Signature)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// MinimalPNG returns signature + IHDR + IEND with no text chunks.
func MinimalPNG() []byte {
	return PNG(IHDR(1, 1), IEND())
}

// EncodedPNG renders a small gradient with image/png so tests also run
// against encoder-produced files.
func EncodedPNG(t testing.TB, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: 0xff})
		}
	}
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return b.Bytes()
}
