package pngtext_test

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngtext/internal/testutil"
	"github.com/joshuapare/pngtext/pkg/pngtext"
	"github.com/joshuapare/pngtext/pkg/types"
)

func sampleFiles(t *testing.T) map[string][]byte {
	t.Helper()
	return map[string][]byte{
		"minimal": testutil.MinimalPNG(),
		"encoded": testutil.EncodedPNG(t, 8, 8),
		"with text": testutil.PNG(
			testutil.IHDR(4, 4),
			testutil.TextChunk("Author", "someone"),
			testutil.Chunk("IDAT", []byte{0x78, 0x9c, 0x01}),
			testutil.TextChunk("Title", "old"),
			testutil.IEND(),
		),
	}
}

func TestEncodeMinimalScenario(t *testing.T) {
	out, err := pngtext.Encode(testutil.MinimalPNG(), "Title", "hello")
	require.NoError(t, err)

	end := len(out) - 12
	require.Equal(t, "IEND", string(out[end+4:end+8]))

	chunk := out[end-23 : end]
	require.Equal(t, []byte{0, 0, 0, 11}, chunk[:4])
	require.Equal(t, "tEXt", string(chunk[4:8]))
	require.Equal(t, "Title\x00hello", string(chunk[8:19]))

	crc := crc32.ChecksumIEEE([]byte("tEXtTitle\x00hello"))
	require.Equal(t, []byte{byte(crc >> 24), byte(crc >> 16), byte(crc >> 8), byte(crc)}, chunk[19:])

	want := testutil.PNG(testutil.IHDR(1, 1), testutil.TextChunk("Title", "hello"), testutil.IEND())
	require.Equal(t, want, out)
}

func TestRoundTrip(t *testing.T) {
	values := []struct{ keyword, value string }{
		{"Title", "hello"},
		{"Comment", ""},
		{"Description", "line one\nline two"},
		{"Software", "with\x00embedded\x00nuls"},
		{"Ключ", "значение ✓"},
	}
	for name, b := range sampleFiles(t) {
		for _, v := range values {
			t.Run(name+"/"+v.keyword, func(t *testing.T) {
				out, err := pngtext.Encode(b, v.keyword, v.value)
				require.NoError(t, err)
				got, err := pngtext.Decode(out, v.keyword)
				require.NoError(t, err)
				require.Equal(t, v.value, got)
			})
		}
	}
}

func TestEncodeDoesNotModifyInput(t *testing.T) {
	b := sampleFiles(t)["with text"]
	orig := bytes.Clone(b)
	_, err := pngtext.Encode(b, "Title", "new")
	require.NoError(t, err)
	require.Equal(t, orig, b)
}

func TestEncodeReplacesAllText(t *testing.T) {
	b := sampleFiles(t)["with text"]

	out, err := pngtext.Encode(b, "Title", "v1")
	require.NoError(t, err)
	out, err = pngtext.Encode(out, "Title", "v2")
	require.NoError(t, err)

	got, err := pngtext.Decode(out, "Title")
	require.NoError(t, err)
	require.Equal(t, "v2", got)

	// Other keywords are removed too: the policy is replace-all.
	_, err = pngtext.Decode(out, "Author")
	require.ErrorIs(t, err, types.ErrKeywordNotFound)

	entries, err := pngtext.List(out)
	require.NoError(t, err)
	require.Equal(t, []pngtext.TextEntry{{Keyword: "Title", Value: "v2"}}, entries)
}

func TestEncodeKeepsOtherChunksInOrder(t *testing.T) {
	b := sampleFiles(t)["with text"]
	out, err := pngtext.Encode(b, "K", "V")
	require.NoError(t, err)

	want := testutil.PNG(
		testutil.IHDR(4, 4),
		testutil.Chunk("IDAT", []byte{0x78, 0x9c, 0x01}),
		testutil.TextChunk("K", "V"),
		testutil.IEND(),
	)
	require.Equal(t, want, out)
}

func TestEncodeEmptyKeywordStripsOnly(t *testing.T) {
	b := sampleFiles(t)["with text"]
	for _, value := range []string{"", "anything", "drop"} {
		out, err := pngtext.Encode(b, "", value)
		require.NoError(t, err)
		trimmed, err := pngtext.Trim(b)
		require.NoError(t, err)
		require.Equal(t, trimmed, out, "value %q", value)
		require.Equal(t, "IEND", string(out[len(out)-8:len(out)-4]))
	}
}

func TestEncodeRejectsBadText(t *testing.T) {
	b := testutil.MinimalPNG()

	_, err := pngtext.Encode(b, "bad\x00key", "v")
	require.ErrorIs(t, err, types.ErrInvalidEncoding)

	_, err = pngtext.Encode(b, "\xff\xfe", "v")
	require.ErrorIs(t, err, types.ErrInvalidEncoding)

	_, err = pngtext.Encode(b, "Title", "\xc3\x28")
	require.ErrorIs(t, err, types.ErrInvalidEncoding)
}

func TestEncodeRaw(t *testing.T) {
	out, err := pngtext.EncodeRaw(testutil.MinimalPNG(), []byte("Title"), []byte{0xe9, 't', 0xe9})
	require.NoError(t, err)

	raw, err := pngtext.DecodeRaw(out, "Title")
	require.NoError(t, err)
	require.Equal(t, []byte{0xe9, 't', 0xe9}, raw)

	_, err = pngtext.Decode(out, "Title")
	require.ErrorIs(t, err, types.ErrInvalidEncoding)

	_, err = pngtext.EncodeRaw(testutil.MinimalPNG(), []byte("a\x00"), nil)
	require.ErrorIs(t, err, types.ErrInvalidEncoding)
}

func TestTrimIdempotent(t *testing.T) {
	for name, b := range sampleFiles(t) {
		t.Run(name, func(t *testing.T) {
			once, err := pngtext.Trim(b)
			require.NoError(t, err)
			twice, err := pngtext.Trim(once)
			require.NoError(t, err)
			require.Equal(t, once, twice)
		})
	}
}

func TestTrimStripsAll(t *testing.T) {
	b := sampleFiles(t)["with text"]
	out, err := pngtext.Trim(b)
	require.NoError(t, err)

	for _, k := range []string{"Author", "Title"} {
		_, err := pngtext.Decode(out, k)
		require.ErrorIs(t, err, types.ErrKeywordNotFound, k)
	}
	entries, err := pngtext.List(out)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDecodeFirstMatchWins(t *testing.T) {
	b := testutil.PNG(
		testutil.IHDR(1, 1),
		testutil.TextChunk("Title", "first"),
		testutil.TextChunk("Title", "second"),
		testutil.IEND(),
	)
	got, err := pngtext.Decode(b, "Title")
	require.NoError(t, err)
	require.Equal(t, "first", got)
}

func TestDecodeStopsAtFirstMatch(t *testing.T) {
	// The truncated chunk after the match is never reached.
	b := testutil.PNG(testutil.IHDR(1, 1), testutil.TextChunk("Title", "ok"))
	b = append(b, 0x00, 0x00, 0x10, 0x00, 'I', 'D')
	got, err := pngtext.Decode(b, "Title")
	require.NoError(t, err)
	require.Equal(t, "ok", got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *types.Error
	}{
		{"not found", testutil.MinimalPNG(), types.ErrKeywordNotFound},
		{"missing IEND", testutil.PNG(testutil.IHDR(1, 1)), types.ErrMalformed},
		{"overrun", testutil.MinimalPNG()[:20], types.ErrMalformed},
		{"no separator", testutil.PNG(testutil.Chunk("tEXt", []byte("Title")), testutil.IEND()), types.ErrMalformed},
		{"bad keyword", testutil.PNG(testutil.TextChunk("\xff", "x"), testutil.IEND()), types.ErrInvalidEncoding},
		{"bad value", testutil.PNG(testutil.TextChunk("Title", "\xff"), testutil.IEND()), types.ErrInvalidEncoding},
		{"empty", nil, types.ErrInvalidHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pngtext.Decode(tt.data, "Title")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHeaderRejection(t *testing.T) {
	for i := range 8 {
		b := testutil.MinimalPNG()
		b[i]++

		_, err := pngtext.Decode(b, "Title")
		require.ErrorIs(t, err, types.ErrInvalidHeader, "decode byte %d", i)
		_, err = pngtext.Encode(b, "Title", "v")
		require.ErrorIs(t, err, types.ErrInvalidHeader, "encode byte %d", i)
		_, err = pngtext.Trim(b)
		require.ErrorIs(t, err, types.ErrInvalidHeader, "trim byte %d", i)
		_, err = pngtext.List(b)
		require.ErrorIs(t, err, types.ErrInvalidHeader, "list byte %d", i)
	}
}

func TestEncodeMalformed(t *testing.T) {
	_, err := pngtext.Encode(testutil.PNG(testutil.IHDR(1, 1)), "Title", "v")
	require.ErrorIs(t, err, types.ErrMalformed)

	b := testutil.MinimalPNG()
	b[8+3] = 0xff // IHDR length now runs past the buffer
	_, err = pngtext.Trim(b)
	require.ErrorIs(t, err, types.ErrMalformed)
}

func TestListRaw(t *testing.T) {
	b := sampleFiles(t)["with text"]
	entries, err := pngtext.ListRaw(b)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Author", string(entries[0].Keyword))
	require.Equal(t, "someone", string(entries[0].Value))
	require.Equal(t, "Title", string(entries[1].Keyword))
	require.Equal(t, 8+25, entries[0].Offset)

	// Entries are copies, not views into the input.
	entries[0].Value[0] = 'X'
	again, err := pngtext.ListRaw(b)
	require.NoError(t, err)
	require.Equal(t, "someone", string(again[0].Value))
}

func TestEndChunk(t *testing.T) {
	require.Equal(t, testutil.IEND(), pngtext.EndChunk())
}
