package jwa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptedWhitelist(t *testing.T) {
	for _, name := range []string{
		"HS256", "HS384", "HS512",
		"RS256", "RS384", "RS512",
		"ES256", "ES384", "ES512",
		"PS256", "PS384", "PS512",
	} {
		assert.True(t, Accepted(name), "expected %s to be accepted", name)
	}
	assert.False(t, Accepted("none"))
	assert.False(t, Accepted("HS1"))
}

func TestRegisterRefusesUnacceptedName(t *testing.T) {
	r := NewRegistry()
	r.Register("none", &hmacFactory{name: "none"})

	_, err := r.MakeSigner("none", "", []byte("secret"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
}

func TestRegisterReplacesExistingFactory(t *testing.T) {
	r := NewRegistry()
	r.Register("HS256", &hmacFactory{name: "HS256", hasher: 0})

	first, err := r.MakeSigner("HS256", "", []byte("first-secret"))
	require.NoError(t, err)
	assert.Equal(t, "HS256", first.Algorithm())

	r.Register("HS256", &hmacFactory{name: "HS256-replacement", hasher: 0})
	second, err := r.MakeSigner("HS256", "", []byte("second-secret"))
	require.NoError(t, err)
	assert.Equal(t, "HS256-replacement", second.Algorithm())
}

func TestMakeSignerUnknownAlgorithm(t *testing.T) {
	r := NewRegistry()
	_, err := r.MakeSigner("RS256", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
}

func TestGlobalRegistryHasAllFamiliesRegistered(t *testing.T) {
	for _, name := range AcceptedAlgs() {
		_, err := Global().lookup(name)
		assert.NoError(t, err, "expected %s to be registered", name)
	}
	// The init() functions in hmac.go, rsa.go, rsapss.go, and ecdsa.go run
	// once per process and register against Global().
	_, err := MakeSigner("HS256", "", []byte("shared-secret"))
	assert.NoError(t, err)
}
