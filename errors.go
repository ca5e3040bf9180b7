package jwt

import (
	"errors"
	"fmt"
)

// Kind categorizes a jwt error so callers can branch on failure type
// without string-matching messages.
type Kind int

const (
	// Malformed means the token's structure (dot count, base64url
	// encoding, header/payload JSON) was not well-formed.
	Malformed Kind = iota
	// Locked means a mutation was attempted on claims that have already
	// been signed.
	Locked
	// InvalidStringOrURI means a claim meant to hold a StringOrURI
	// (RFC 7519 §2) contained a string with a colon that does not parse
	// as a URI.
	InvalidStringOrURI
	// Expired means "exp" has passed, beyond any configured skew.
	Expired
	// NotYetValid means "nbf" has not yet arrived.
	NotYetValid
	// IssuedInFuture means "iat" is ahead of the current time.
	IssuedInFuture
	// SignatureInvalid means signature verification failed.
	SignatureInvalid
	// AlgorithmMismatch means the header's "alg" did not match the
	// algorithm the caller told Decode to expect for the resolved key.
	AlgorithmMismatch
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "Malformed"
	case Locked:
		return "Locked"
	case InvalidStringOrURI:
		return "InvalidStringOrURI"
	case Expired:
		return "Expired"
	case NotYetValid:
		return "NotYetValid"
	case IssuedInFuture:
		return "IssuedInFuture"
	case SignatureInvalid:
		return "SignatureInvalid"
	case AlgorithmMismatch:
		return "AlgorithmMismatch"
	default:
		return "Unknown"
	}
}

// Error is the error type this package returns for JWT-level failures.
// Errors raised by package json while reading or mutating claims (for
// example Locked or FinalMember) are returned as they are, not wrapped.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jwt: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("jwt: %s: %s", e.Kind, e.Msg)
}

// Is reports a match on Kind alone, so callers can write
// errors.Is(err, &jwt.Error{Kind: jwt.Expired}) without needing the exact
// message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func (e *Error) Unwrap() error { return e.Err }

// ErrAlgorithmUnavailable names an algorithm the registry has no
// Signer/Verifier for. No function in this package returns it: Sign,
// NewJWSFactory, Decode and DecodeWithLocator report such an algorithm as
// a Malformed *Error wrapping jwa.ErrAlgorithmUnavailable.
var ErrAlgorithmUnavailable = errors.New("jwt: algorithm unavailable")

// ErrKeyImportFailed names a failure to turn key material into a Go
// crypto key. No function in this package returns it: a KeyLocator
// converts its own key material, and jwk.Set.Locate reports a key it
// cannot convert as not found.
var ErrKeyImportFailed = errors.New("jwt: key import failed")
