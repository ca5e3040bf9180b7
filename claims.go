package jwt

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aegis-jwt/jwt/json"
)

// registeredClaimNames are the seven RFC 7519 §4.1 claim names. Sign and
// Decode finalize these members so they cannot be mutated afterward; the
// typed setters exist so "exp"/"nbf"/"iat" always end up as integers and
// "aud" always ends up as an array.
var registeredClaimNames = map[string]bool{
	"iss": true, "sub": true, "aud": true,
	"exp": true, "nbf": true, "iat": true, "jti": true,
}

// Claims is a JWT claims set: an ordered collection of members backed by
// a json.Object, with typed helpers for the registered claims layered on
// top. Claims are built up with the Set/Add methods, then handed to Sign,
// which locks the underlying object once the token is encoded.
//
// duration and nbfOffset are deferred offsets rather than claim members:
// SetDuration/SetNotBeforeOffset record how far past the eventual sign-time
// "iat" the "exp"/"nbf" should land, and signWith resolves them once it
// knows what "iat" actually is.
type Claims struct {
	obj *json.Object

	duration    time.Duration
	hasDuration bool

	nbfOffset    time.Duration
	hasNbfOffset bool
}

// NewClaims returns an empty, unlocked Claims set.
func NewClaims() *Claims {
	return &Claims{obj: json.NewObject()}
}

// Object exposes the underlying ordered object, e.g. for serialization by
// the signing pipeline.
func (c *Claims) Object() *json.Object { return c.obj }

// Locked reports whether the claims set has been signed already and can
// no longer be mutated.
func (c *Claims) Locked() bool { return c.obj.Locked() }

// AddClaim sets a claim by name. Before a claims set is signed or decoded,
// this can touch any member, registered or custom — the typed setters
// exist for convenience and validation (StringOrURI checks, "aud" as an
// array), not to gate this method. Once a registered claim has been
// finalized, by signing or by decoding, AddClaim fails with FinalMember
// for that name, while custom claims remain mutable.
func (c *Claims) AddClaim(name string, v json.Value) error {
	return c.obj.SetValue(name, v)
}

// GetClaim returns the raw value stored under name, whether registered or
// custom.
func (c *Claims) GetClaim(name string) (json.Value, bool) {
	v, err := c.obj.GetValue(name)
	if err != nil {
		return json.Value{}, false
	}
	return v, true
}

func stringOrURI(s string) error {
	if s == "" || !strings.Contains(s, ":") {
		return nil
	}
	if _, err := url.Parse(s); err != nil {
		return &Error{Kind: InvalidStringOrURI, Msg: fmt.Sprintf("%q is not a valid StringOrURI: %v", s, err)}
	}
	return nil
}

func (c *Claims) setString(name, value string) error {
	v, err := json.NewString(value)
	if err != nil {
		return err
	}
	return c.obj.SetValue(name, v)
}

func (c *Claims) setInteger(name string, value int64) error {
	return c.obj.SetValue(name, json.NewInteger(value))
}

// SetIssuer sets "iss". iss must be empty or a valid StringOrURI (RFC
// 7519 §2).
func (c *Claims) SetIssuer(iss string) error {
	if err := stringOrURI(iss); err != nil {
		return err
	}
	return c.setString("iss", iss)
}

// SetSubject sets "sub". sub must be empty or a valid StringOrURI.
func (c *Claims) SetSubject(sub string) error {
	if err := stringOrURI(sub); err != nil {
		return err
	}
	return c.setString("sub", sub)
}

// AddAudience appends aud to the "aud" claim, creating the array on first
// use. Each element must be a valid StringOrURI.
func (c *Claims) AddAudience(aud string) error {
	if err := stringOrURI(aud); err != nil {
		return err
	}

	existing, ok := c.GetClaim("aud")
	var arr *json.Array
	if ok {
		a, err := existing.Array()
		if err != nil {
			return err
		}
		arr = a
	} else {
		arr = json.NewArray()
	}

	v, err := json.NewString(aud)
	if err != nil {
		return err
	}
	if err := arr.Append(v); err != nil {
		return err
	}

	return c.obj.SetValue("aud", json.NewArrayValue(arr))
}

// SetExpiry sets "exp" to t.
func (c *Claims) SetExpiry(t time.Time) error { return c.setInteger("exp", t.Unix()) }

// SetNotBefore sets "nbf" to t.
func (c *Claims) SetNotBefore(t time.Time) error { return c.setInteger("nbf", t.Unix()) }

// SetIssuedAt sets "iat" to t.
func (c *Claims) SetIssuedAt(t time.Time) error { return c.setInteger("iat", t.Unix()) }

// SetID sets "jti".
func (c *Claims) SetID(id string) error { return c.setString("jti", id) }

// SetDuration records d as the lifetime to apply at sign time: Sign
// computes "exp" as the sign-time "iat" plus d, rather than stamping an
// absolute "exp" now. It has no effect on a claims set whose "exp" was
// already set explicitly via SetExpiry, which always wins.
func (c *Claims) SetDuration(d time.Duration) error {
	if d <= 0 {
		return &Error{Kind: Malformed, Msg: "duration must be positive"}
	}
	c.duration = d
	c.hasDuration = true
	return nil
}

// SetNotBeforeOffset records d as the delay to apply to "nbf" at sign
// time, the same way SetDuration defers "exp": Sign computes "nbf" as the
// sign-time "iat" plus d. It has no effect if "nbf" was already set
// explicitly via SetNotBefore.
func (c *Claims) SetNotBeforeOffset(d time.Duration) error {
	if d <= 0 {
		return &Error{Kind: Malformed, Msg: "not-before offset must be positive"}
	}
	c.nbfOffset = d
	c.hasNbfOffset = true
	return nil
}

func (c *Claims) int64Claim(name string) (int64, bool) {
	v, ok := c.GetClaim(name)
	if !ok {
		return 0, false
	}
	i, err := v.Integer()
	if err != nil {
		return 0, false
	}
	return i, true
}

// validateClaims checks "nbf", "iat", and "exp" against now, allowing skew in
// either direction.
func validateClaims(c *Claims, now time.Time, skew time.Duration) error {
	cur := now.Unix()
	lee := int64(skew / time.Second)

	if nbf, ok := c.int64Claim("nbf"); ok && cur+lee < nbf {
		return &Error{Kind: NotYetValid, Msg: "token not valid yet"}
	}
	if iat, ok := c.int64Claim("iat"); ok && cur+lee < iat {
		return &Error{Kind: IssuedInFuture, Msg: "token issued in the future"}
	}
	if exp, ok := c.int64Claim("exp"); ok && cur-lee >= exp {
		return &Error{Kind: Expired, Msg: "token expired"}
	}
	return nil
}
