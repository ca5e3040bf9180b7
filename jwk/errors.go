package jwk

import "errors"

// ErrUnsupportedKeyType is returned when a JWK's "kty" is not one of
// "RSA", "EC", or "oct".
var ErrUnsupportedKeyType = errors.New("jwk: unsupported key type")

// ErrUnsupportedCurve is returned when an EC JWK's "crv" does not name one
// of the curves this package knows how to reconstruct.
var ErrUnsupportedCurve = errors.New("jwk: unsupported curve")

// ErrNoPEMBlock is returned when PEM-encoded input contains no decodable
// block at all.
var ErrNoPEMBlock = errors.New("jwk: no PEM block found")

// ErrEmptyKid names a JWS header that lacks the "kid" member a key lookup
// needs. No function in this module returns it: jwt.DecodeWithLocator
// reports a missing "kid" as a jwt Malformed error.
var ErrEmptyKid = errors.New("jwk: kid is empty")

// ErrUnknownKid names a "kid" that matches no key held by a locator. No
// function in this module returns it: Set.Locate and Keys.Locate report
// an unknown kid with ok == false.
var ErrUnknownKid = errors.New("jwk: unknown kid")

// KeyImportFailed wraps the underlying parse error when key material
// (PEM or JWK) could not be turned into a usable Go crypto key.
type KeyImportFailed struct {
	Kty string
	Err error
}

func (e *KeyImportFailed) Error() string {
	if e.Kty != "" {
		return "jwk: import " + e.Kty + " key: " + e.Err.Error()
	}
	return "jwk: import key: " + e.Err.Error()
}

func (e *KeyImportFailed) Unwrap() error { return e.Err }
