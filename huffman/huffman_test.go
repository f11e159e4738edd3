package huffman_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/huffman"
)

func TestBuild_Codes(t *testing.T) {
	tr, err := huffman.Build("aaabbc")
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'a': "0", 'c': "10", 'b': "11"}, tr.Codes())
	assert.Equal(t, 6, tr.Root.Freq)

	enc, err := tr.Encode("aaabbc")
	require.NoError(t, err)
	assert.Equal(t, "000111110", enc)

	ratio, err := tr.CompressionRatio("aaabbc")
	require.NoError(t, err)
	assert.InDelta(t, 48.0/9.0, ratio, 1e-9)
}

func TestBuild_Deterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	a, err := huffman.Build(text)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b, _ := huffman.Build(text)
		assert.Equal(t, a.Codes(), b.Codes())
	}
}

func TestBuild_PrefixFree(t *testing.T) {
	tr, err := huffman.Build("abracadabra alakazam")
	require.NoError(t, err)
	codes := tr.Codes()
	for r1, c1 := range codes {
		for r2, c2 := range codes {
			if r1 != r2 {
				assert.False(t, strings.HasPrefix(c2, c1), "%q=%s prefixes %q=%s", r1, c1, r2, c2)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"aaaa",
		"ab",
		"mississippi river",
		"héllo wörld ✓✓✓",
		strings.Repeat("abcdefgh", 20) + "zzzzzzzzzzzz",
	}
	for _, text := range texts {
		tr, err := huffman.Build(text)
		require.NoError(t, err, text)
		enc, err := tr.Encode(text)
		require.NoError(t, err)
		dec, err := tr.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	}
}

func TestEncodedLength_NonUniform(t *testing.T) {
	text := "aaaaaaaabbbbccd"
	tr, _ := huffman.Build(text)
	enc, _ := tr.Encode(text)
	assert.LessOrEqual(t, len(enc), len([]rune(text))*8)
	ratio, _ := tr.CompressionRatio(text)
	assert.Greater(t, ratio, 1.0)
}

func TestSingleSymbol(t *testing.T) {
	tr, err := huffman.Build("zzz")
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'z': "0"}, tr.Codes())
	enc, _ := tr.Encode("zzz")
	assert.Equal(t, "000", enc)
	dec, err := tr.Decode("00")
	require.NoError(t, err)
	assert.Equal(t, "zz", dec)
	_, err = tr.Decode("01")
	assert.ErrorIs(t, err, huffman.ErrInvalidBit)
}

func TestErrors(t *testing.T) {
	_, err := huffman.Build("")
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)

	tr, _ := huffman.Build("aaabbc")
	_, err = tr.Encode("abd")
	assert.ErrorIs(t, err, huffman.ErrUnknownSymbol)
	_, err = tr.Decode("0x1")
	assert.ErrorIs(t, err, huffman.ErrInvalidBit)
	_, err = tr.Decode("01")
	assert.ErrorIs(t, err, huffman.ErrTruncated)

	empty, err := tr.Decode("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInvalidUTF8(t *testing.T) {
	_, err := huffman.Build("a\xffb\xfe")
	assert.ErrorIs(t, err, huffman.ErrInvalidUTF8)
	_, err = huffman.Compress("a\xffb\xfe")
	assert.ErrorIs(t, err, huffman.ErrInvalidUTF8)

	tr, err := huffman.Build("ab\uFFFD")
	require.NoError(t, err)
	_, err = tr.Encode("a\xff")
	assert.ErrorIs(t, err, huffman.ErrInvalidUTF8)

	bits, err := tr.Encode("\uFFFDab")
	require.NoError(t, err)
	back, err := tr.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "\uFFFDab", back)
}

func TestCompress(t *testing.T) {
	res, err := huffman.Compress("aaabbc")
	require.NoError(t, err)
	assert.Equal(t, "000111110", res.Encoded)
	assert.Len(t, res.Codes, 3)
	assert.InDelta(t, 5.333, res.Ratio, 1e-3)

	_, err = huffman.Compress("")
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
}
