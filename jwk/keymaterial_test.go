package jwk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysRegisterSecretAndLocate(t *testing.T) {
	keys := NewKeys()
	keys.RegisterSecret("hs-kid", "HS256", []byte("shared-secret"))

	alg, pub, ok := keys.Locate("hs-kid")
	require.True(t, ok)
	assert.Equal(t, "HS256", alg)
	assert.Equal(t, []byte("shared-secret"), pub)

	alg, priv, ok := keys.SigningKey("hs-kid")
	require.True(t, ok)
	assert.Equal(t, "HS256", alg)
	assert.Equal(t, []byte("shared-secret"), priv)
}

func TestKeysLocateMissingKid(t *testing.T) {
	keys := NewKeys()
	_, _, ok := keys.Locate("missing")
	assert.False(t, ok)
}

func TestKeysRegisterReplacesExistingEntry(t *testing.T) {
	keys := NewKeys()
	keys.RegisterSecret("kid", "HS256", []byte("first"))
	keys.RegisterSecret("kid", "HS256", []byte("second"))

	_, pub, ok := keys.Locate("kid")
	require.True(t, ok)
	assert.Equal(t, []byte("second"), pub)
}
