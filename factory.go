package jwt

import "time"

// ClaimsFactory builds Claims pre-populated with configured defaults. It
// plays the role a jwt factory plays in the wild: configure issuer,
// audience, and default lifetime once, then ask for a fresh claims set
// per request instead of repeating that boilerplate at every call site.
type ClaimsFactory struct {
	issuer   string
	audience []string
	lifetime time.Duration
	locked   bool
}

// NewClaimsFactory returns an unconfigured factory.
func NewClaimsFactory() *ClaimsFactory { return &ClaimsFactory{} }

func (f *ClaimsFactory) mustNotBeLocked() {
	if f.locked {
		panic("jwt: ClaimsFactory configured after first use")
	}
}

// WithIssuer sets the "iss" every claims set built by this factory will
// carry.
func (f *ClaimsFactory) WithIssuer(iss string) *ClaimsFactory {
	f.mustNotBeLocked()
	f.issuer = iss
	return f
}

// WithAudience sets the "aud" every claims set built by this factory will
// carry.
func (f *ClaimsFactory) WithAudience(aud ...string) *ClaimsFactory {
	f.mustNotBeLocked()
	f.audience = append([]string(nil), aud...)
	return f
}

// WithLifetime sets the default "exp" offset from "iat" applied to every
// claims set this factory builds, unless the caller overwrites "exp"
// afterward.
func (f *ClaimsFactory) WithLifetime(d time.Duration) *ClaimsFactory {
	f.mustNotBeLocked()
	f.lifetime = d
	return f
}

// New returns a fresh Claims set carrying this factory's configured
// defaults. "iat" is left unset so Sign stamps it at the actual moment of
// signing; if a lifetime was configured, it is recorded as a deferred
// duration so Sign computes "exp" as that sign-time "iat" plus the
// lifetime, rather than an absolute deadline fixed at New's call time.
// The factory locks its configuration on first call.
func (f *ClaimsFactory) New() (*Claims, error) {
	f.locked = true

	c := NewClaims()

	if f.issuer != "" {
		if err := c.SetIssuer(f.issuer); err != nil {
			return nil, err
		}
	}
	for _, aud := range f.audience {
		if err := c.AddAudience(aud); err != nil {
			return nil, err
		}
	}
	if f.lifetime > 0 {
		if err := c.SetDuration(f.lifetime); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// KeyLocator resolves a "kid" header value to the algorithm and key
// material that kid is supposed to be used with. jwk.Set and jwk.Keys
// both satisfy this interface structurally — this package does not
// import jwk so that callers who only need HMAC never pull in PEM/JWK
// parsing.
type KeyLocator interface {
	Locate(kid string) (alg string, key interface{}, ok bool)
}

// JWSFactory binds one algorithm and key to a reusable signer, so a
// caller signing many tokens with the same key pays the Signer
// construction cost once instead of on every call. Close zeroizes the
// held key material; callers must call it once the factory is no longer
// needed.
type JWSFactory struct {
	alg string
	kid string
	s   signer
}

// NewJWSFactory constructs a JWSFactory bound to alg and key, tagging
// every token it signs with kid (which may be "").
func NewJWSFactory(alg string, key interface{}, kid string) (*JWSFactory, error) {
	s, err := makeSigner(alg, kid, key)
	if err != nil {
		return nil, err
	}
	return &JWSFactory{alg: alg, kid: kid, s: s}, nil
}

// Sign encodes and signs c using the factory's bound algorithm and key.
func (f *JWSFactory) Sign(c *Claims) (string, error) {
	return signWith(f.s, f.alg, f.kid, c)
}

// Close zeroizes the factory's held key material.
func (f *JWSFactory) Close() error {
	return f.s.Close()
}
