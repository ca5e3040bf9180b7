package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsFactoryAppliesDefaults(t *testing.T) {
	f := NewClaimsFactory().
		WithIssuer("https://issuer.example").
		WithAudience("api").
		WithLifetime(time.Hour)

	c, err := f.New()
	require.NoError(t, err)

	iss, ok := c.GetClaim("iss")
	require.True(t, ok)
	s, err := iss.String()
	require.NoError(t, err)
	assert.Equal(t, "https://issuer.example", s)

	// The configured lifetime is a deferred offset: "exp"/"iat" only
	// materialize once the claims are actually signed.
	_, ok = c.GetClaim("exp")
	assert.False(t, ok)
	_, ok = c.GetClaim("iat")
	assert.False(t, ok)

	token, err := Sign("HS256", []byte("secret"), c, "")
	require.NoError(t, err)

	verified, err := Decode(token, "HS256", []byte("secret"))
	require.NoError(t, err)

	iat, ok := verified.GetClaim("iat")
	require.True(t, ok)
	iatVal, err := iat.Integer()
	require.NoError(t, err)

	exp, ok := verified.GetClaim("exp")
	require.True(t, ok)
	expVal, err := exp.Integer()
	require.NoError(t, err)

	assert.Equal(t, iatVal+int64(time.Hour/time.Second), expVal)
}

func TestClaimsFactoryPanicsOnConfigureAfterUse(t *testing.T) {
	f := NewClaimsFactory()
	_, err := f.New()
	require.NoError(t, err)

	assert.Panics(t, func() {
		f.WithIssuer("too-late")
	})
}

func TestJWSFactorySignsMultipleClaims(t *testing.T) {
	f, err := NewJWSFactory("HS256", []byte("secret"), "kid-1")
	require.NoError(t, err)
	defer f.Close()

	token1, err := f.Sign(NewClaims())
	require.NoError(t, err)
	token2, err := f.Sign(NewClaims())
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)

	_, err = Decode(token1, "HS256", []byte("secret"))
	assert.NoError(t, err)
}

func TestJWSFactoryRejectsUnavailableAlgorithm(t *testing.T) {
	_, err := NewJWSFactory("none", []byte("secret"), "")
	require.Error(t, err)
}
