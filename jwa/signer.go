package jwa

// PrivateKey and PublicKey are documentation aliases for the key material
// each algorithm's Factory accepts. The concrete type varies by
// algorithm family ([]byte for HMAC, *rsa.PrivateKey/*rsa.PublicKey for
// RSA and RSA-PSS, *ecdsa.PrivateKey/*ecdsa.PublicKey for ECDSA).
type (
	PrivateKey = interface{}
	PublicKey  = interface{}
)

// Signer produces a signature over a JWS signing input ("header.payload",
// both already base64url-encoded and joined with a dot) using key
// material bound at construction time.
type Signer interface {
	// Algorithm returns the JWA name this Signer was constructed for.
	Algorithm() string
	// KeyID returns the "kid" this Signer's output should be tagged
	// with, or "" if none was supplied.
	KeyID() string
	// Sign returns the raw (not base64url-encoded) signature over
	// signingInput.
	Sign(signingInput []byte) ([]byte, error)
	// Close zeroizes any key material this Signer holds. Callers must
	// invoke it once the Signer is no longer needed.
	Close() error
}

// Verifier checks a signature over a JWS signing input using key
// material bound at construction time.
type Verifier interface {
	// Algorithm returns the JWA name this Verifier was constructed for.
	Algorithm() string
	// KeyID returns the "kid" this Verifier was constructed with, or ""
	// if none was supplied. Verify does not check it.
	KeyID() string
	// Verify reports whether signature is a valid signature over
	// signingInput. A signature of the wrong length or one that fails
	// the check gives false with a nil error; an error is returned only
	// if hashing signingInput fails.
	Verify(signingInput, signature []byte) (bool, error)
	// Close zeroizes any key material this Verifier holds.
	Close() error
}
