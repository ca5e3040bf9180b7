package jwa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACSignAndVerifyRoundTrip(t *testing.T) {
	secret := []byte("top-secret-key")
	signer, err := MakeSigner("HS256", "kid-1", secret)
	require.NoError(t, err)

	sig, err := signer.Sign([]byte("header.payload"))
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	verifier, err := MakeVerifier("HS256", "kid-1", secret)
	require.NoError(t, err)

	ok, err := verifier.Verify([]byte("header.payload"), sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHMACVerifyRejectsTamperedSignature(t *testing.T) {
	secret := []byte("top-secret-key")
	signer, err := MakeSigner("HS384", "", secret)
	require.NoError(t, err)

	sig, err := signer.Sign([]byte("header.payload"))
	require.NoError(t, err)
	sig[0] ^= 0xFF

	verifier, err := MakeVerifier("HS384", "", secret)
	require.NoError(t, err)

	ok, err := verifier.Verify([]byte("header.payload"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHMACRejectsWrongKeyType(t *testing.T) {
	_, err := MakeSigner("HS512", "", "not-a-byte-slice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestHMACCloseZeroesSecret(t *testing.T) {
	secret := []byte("zero-me-please")
	signer, err := MakeSigner("HS256", "", secret)
	require.NoError(t, err)

	_, err = signer.Sign([]byte("x"))
	require.NoError(t, err)

	require.NoError(t, signer.Close())

	hs := signer.(*hmacSigner)
	for _, b := range hs.secret {
		assert.Equal(t, byte(0), b)
	}
}
