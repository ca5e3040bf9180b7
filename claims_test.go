package jwt

import (
	"testing"
	"time"

	"github.com/aegis-jwt/jwt/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsSetIssuerSubjectAudience(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetIssuer("https://issuer.example"))
	require.NoError(t, c.SetSubject("user-1"))
	require.NoError(t, c.AddAudience("api"))
	require.NoError(t, c.AddAudience("web"))

	iss, ok := c.GetClaim("iss")
	require.True(t, ok)
	s, err := iss.String()
	require.NoError(t, err)
	assert.Equal(t, "https://issuer.example", s)

	aud, ok := c.GetClaim("aud")
	require.True(t, ok)
	arr, err := aud.Array()
	require.NoError(t, err)
	assert.Equal(t, 2, arr.Len())
}

func TestClaimsSetIssuerRejectsInvalidURI(t *testing.T) {
	c := NewClaims()
	err := c.SetIssuer("http://[::1]:namedport")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: InvalidStringOrURI})
}

func TestClaimsAddClaimAllowsRegisteredNameBeforeSigning(t *testing.T) {
	c := NewClaims()
	v, err := json.NewString("https://issuer.example")
	require.NoError(t, err)

	require.NoError(t, c.AddClaim("iss", v))

	iss, ok := c.GetClaim("iss")
	require.True(t, ok)
	s, err := iss.String()
	require.NoError(t, err)
	assert.Equal(t, "https://issuer.example", s)
}

func TestClaimsAddClaimRefusesFinalizedRegisteredNameAfterDecode(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetSubject("user-1"))

	token, err := Sign("HS256", []byte("secret"), c, "")
	require.NoError(t, err)

	verified, err := Decode(token, "HS256", []byte("secret"))
	require.NoError(t, err)

	v, err := json.NewString("someone-else")
	require.NoError(t, err)

	err = verified.AddClaim("sub", v)
	require.Error(t, err)

	custom, err := json.NewString("ok")
	require.NoError(t, err)
	require.NoError(t, verified.AddClaim("custom", custom))
}

func TestValidateClaimsExpired(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetExpiry(time.Unix(1000, 0)))

	err := validateClaims(c, time.Unix(2000, 0), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: Expired})
}

func TestValidateClaimsNotYetValid(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetNotBefore(time.Unix(2000, 0)))

	err := validateClaims(c, time.Unix(1000, 0), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: NotYetValid})
}

func TestValidateClaimsExpiredAtSkewBoundary(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetExpiry(time.Unix(4600, 0)))

	// cur - skew == exp exactly: the token is expired at and after this
	// instant, not only strictly past it.
	err := validateClaims(c, time.Unix(4601, 0), time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: Expired})
}

func TestValidateClaimsWithinSkewPasses(t *testing.T) {
	c := NewClaims()
	require.NoError(t, c.SetExpiry(time.Unix(1000, 0)))

	err := validateClaims(c, time.Unix(1010, 0), 30*time.Second)
	assert.NoError(t, err)
}
