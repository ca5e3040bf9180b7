package jwa

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestECDSASignAndVerifyRoundTrip(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	signer, err := MakeSigner("ES256", "", key)
	require.NoError(t, err)
	sig, err := signer.Sign([]byte("header.payload"))
	require.NoError(t, err)
	assert.Len(t, sig, 64)

	verifier, err := MakeVerifier("ES256", "", &key.PublicKey)
	require.NoError(t, err)
	ok, err := verifier.Verify([]byte("header.payload"), sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestECDSARejectsCurveMismatch(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	_, err = MakeSigner("ES384", "", key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestECDSASignerCloseZeroesPrivateScalar(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	signer, err := MakeSigner("ES256", "", key)
	require.NoError(t, err)
	require.NoError(t, signer.Close())

	assert.Equal(t, int64(0), key.D.Int64())
}

func TestECDSAVerifyRejectsWrongSignatureLength(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	verifier, err := MakeVerifier("ES256", "", &key.PublicKey)
	require.NoError(t, err)

	ok, err := verifier.Verify([]byte("header.payload"), []byte("too-short"))
	require.NoError(t, err)
	assert.False(t, ok)
}
