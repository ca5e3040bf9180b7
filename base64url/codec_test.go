package base64url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte{0xff, 0x00, 0x10, 0x20, 0x30},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, c := range cases {
		enc := Encode(c)
		dec, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, c, dec)
	}
}

func TestEncodeHasNoPadding(t *testing.T) {
	enc := Encode([]byte("a"))
	assert.NotContains(t, string(enc), "=")
}

func TestDecodeRejectsIllegalLength(t *testing.T) {
	_, err := Decode([]byte("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalLength)
}

func TestDecodeRejectsStrayCharacters(t *testing.T) {
	_, err := Decode([]byte("abc!"))
	require.Error(t, err)
}
