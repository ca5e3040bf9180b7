package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/aegis-jwt/jwt/base64url"
	"github.com/aegis-jwt/jwt/json"
	"github.com/aegis-jwt/jwt/jwa"
)

type header struct {
	alg string
	kid string
}

func parseHeader(obj *json.Object) (header, error) {
	var h header

	algVal, err := obj.GetValue("alg")
	if err != nil {
		return h, &Error{Kind: Malformed, Msg: "header missing \"alg\"", Err: err}
	}
	h.alg, err = algVal.String()
	if err != nil {
		return h, &Error{Kind: Malformed, Msg: "\"alg\" is not a string", Err: err}
	}

	if obj.Has("kid") {
		kidVal, err := obj.GetValue("kid")
		if err != nil {
			return h, err
		}
		h.kid, err = kidVal.String()
		if err != nil {
			return h, &Error{Kind: Malformed, Msg: "\"kid\" is not a string", Err: err}
		}
	}

	return h, nil
}

// splitCompact splits a compact JWS/JWT into its three encoded segments,
// rejecting anything that is not exactly three dot-separated parts.
func splitCompact(token string) (headerB64, payloadB64, sigB64 string, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", "", "", &Error{Kind: Malformed, Msg: fmt.Sprintf("expected 3 dot-separated segments, got %d", len(parts))}
	}
	return parts[0], parts[1], parts[2], nil
}

func decodeSegmentObject(b64 string) (*json.Object, error) {
	raw, err := base64url.DecodeString(b64)
	if err != nil {
		return nil, &Error{Kind: Malformed, Msg: "segment is not valid base64url", Err: err}
	}
	obj, err := json.ParseObject(string(raw))
	if err != nil {
		return nil, &Error{Kind: Malformed, Msg: "segment is not a JSON object", Err: err}
	}
	return obj, nil
}

// finalizeRegisteredClaims re-stamps each of the seven registered claim
// names present in obj as final, so mutating a decoded "exp"/"sub"/etc.
// afterward fails with FinalMember, while any custom claims in obj stay
// mutable. This is per-claim, unlike a whole-object Lock: a decoded token
// can still carry application-specific claims a caller wants to amend.
func finalizeRegisteredClaims(obj *json.Object) error {
	for name := range registeredClaimNames {
		if !obj.Has(name) {
			continue
		}
		v, err := obj.GetValue(name)
		if err != nil {
			return err
		}
		if err := obj.SetFinalValue(name, v); err != nil {
			return err
		}
	}
	return nil
}

func verifySignature(alg, kid string, key interface{}, signingInput, sigB64 string) error {
	sig, err := base64url.DecodeString(sigB64)
	if err != nil {
		return &Error{Kind: Malformed, Msg: "signature is not valid base64url", Err: err}
	}

	v, err := jwa.MakeVerifier(alg, kid, key)
	if err != nil {
		return &Error{Kind: Malformed, Msg: fmt.Sprintf("no verifier for %q", alg), Err: err}
	}
	defer v.Close()

	ok, err := v.Verify([]byte(signingInput), sig)
	if err != nil {
		return &Error{Kind: SignatureInvalid, Msg: "verification error", Err: err}
	}
	if !ok {
		return &Error{Kind: SignatureInvalid, Msg: "signature does not match"}
	}
	return nil
}

// decodeOptions collects Decode's optional behavior. With no options,
// resolveOptions checks "exp"/"nbf"/"iat" against Clock() with no skew.
type decodeOptions struct {
	skew time.Duration
	now  time.Time
}

// DecodeOption configures Decode or DecodeWithLocator.
type DecodeOption func(*decodeOptions)

// WithSkew allows d of clock skew when validating "exp"/"nbf"/"iat".
func WithSkew(d time.Duration) DecodeOption {
	return func(o *decodeOptions) { o.skew = d }
}

// WithClock overrides the current time used for validation, mainly for
// tests.
func WithClock(t time.Time) DecodeOption {
	return func(o *decodeOptions) { o.now = t }
}

func resolveOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{now: Clock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Decode verifies and decodes a compact JWS, accepting it only if its
// header's "alg" is exactly alg. This is the algorithm-substitution
// guard: alg and key come from the caller, never from the token, so a
// token cannot switch a verifier from asymmetric to symmetric (or from
// one hash strength to another) by lying about its own header.
func Decode(token, alg string, key interface{}, opts ...DecodeOption) (*Claims, error) {
	headerB64, payloadB64, sigB64, err := splitCompact(token)
	if err != nil {
		return nil, err
	}

	headerObj, err := decodeSegmentObject(headerB64)
	if err != nil {
		return nil, err
	}
	h, err := parseHeader(headerObj)
	if err != nil {
		return nil, err
	}
	if h.alg != alg {
		return nil, &Error{Kind: AlgorithmMismatch, Msg: fmt.Sprintf("header alg %q does not match expected %q", h.alg, alg)}
	}

	if err := verifySignature(h.alg, h.kid, key, headerB64+"."+payloadB64, sigB64); err != nil {
		return nil, err
	}

	payloadObj, err := decodeSegmentObject(payloadB64)
	if err != nil {
		return nil, err
	}
	if err := finalizeRegisteredClaims(payloadObj); err != nil {
		return nil, err
	}

	c := &Claims{obj: payloadObj}
	o := resolveOptions(opts)
	if err := validateClaims(c, o.now, o.skew); err != nil {
		return nil, err
	}

	return c, nil
}

// DecodeWithLocator verifies and decodes a compact JWS whose key is
// selected by the header's "kid" through locator. The algorithm locator
// reports for that kid must match the header's "alg" — a kid registered
// for HS256 cannot be used to validate a token that arrives claiming
// RS256, even though both numbers are present somewhere in the request.
func DecodeWithLocator(token string, locator KeyLocator, opts ...DecodeOption) (*Claims, error) {
	headerB64, payloadB64, sigB64, err := splitCompact(token)
	if err != nil {
		return nil, err
	}

	headerObj, err := decodeSegmentObject(headerB64)
	if err != nil {
		return nil, err
	}
	h, err := parseHeader(headerObj)
	if err != nil {
		return nil, err
	}
	if h.kid == "" {
		return nil, &Error{Kind: Malformed, Msg: "header missing \"kid\""}
	}

	expectedAlg, key, ok := locator.Locate(h.kid)
	if !ok {
		return nil, &Error{Kind: Malformed, Msg: fmt.Sprintf("unknown kid %q", h.kid)}
	}
	if h.alg != expectedAlg {
		return nil, &Error{Kind: AlgorithmMismatch, Msg: fmt.Sprintf("header alg %q does not match %q registered for kid %q", h.alg, expectedAlg, h.kid)}
	}

	if err := verifySignature(h.alg, h.kid, key, headerB64+"."+payloadB64, sigB64); err != nil {
		return nil, err
	}

	payloadObj, err := decodeSegmentObject(payloadB64)
	if err != nil {
		return nil, err
	}
	if err := finalizeRegisteredClaims(payloadObj); err != nil {
		return nil, err
	}

	c := &Claims{obj: payloadObj}
	o := resolveOptions(opts)
	if err := validateClaims(c, o.now, o.skew); err != nil {
		return nil, err
	}

	return c, nil
}
