package jwt

import (
	"fmt"
	"time"

	"github.com/aegis-jwt/jwt/base64url"
	"github.com/aegis-jwt/jwt/json"
	"github.com/aegis-jwt/jwt/jwa"
)

// signer is jwa.Signer under a local name, so factory.go can name the
// type it holds without importing jwa.
type signer = jwa.Signer

func makeSigner(alg, kid string, key interface{}) (signer, error) {
	s, err := jwa.MakeSigner(alg, kid, key)
	if err != nil {
		return nil, &Error{Kind: Malformed, Msg: fmt.Sprintf("no signer for %q", alg), Err: err}
	}
	return s, nil
}

// Sign encodes c as a compact JWS: it stamps "iat" (if unset) and "jti"
// (if unset), re-stamps any of "exp"/"nbf" the caller already set
// explicitly, and otherwise derives "exp"/"nbf" from any deferred
// duration/not-before offset recorded via SetDuration/SetNotBeforeOffset
// against this sign-time "iat" — all as final members so nothing
// downstream can alter them — then serializes header and payload,
// base64url-encodes each, and signs the header.payload signing input with
// alg and key.
//
// c is locked on success: further mutation through its Set/Add methods
// fails with a Locked error.
func Sign(alg string, key interface{}, c *Claims, kid string) (string, error) {
	s, err := makeSigner(alg, kid, key)
	if err != nil {
		return "", err
	}
	defer s.Close()

	return signWith(s, alg, kid, c)
}

func stampFinal(obj *json.Object, name string, fallback func() (json.Value, error)) error {
	if existing, ok, err := getIfPresent(obj, name); err != nil {
		return err
	} else if ok {
		return obj.SetFinalValue(name, existing)
	}

	v, err := fallback()
	if err != nil {
		return err
	}
	return obj.SetFinalValue(name, v)
}

func getIfPresent(obj *json.Object, name string) (json.Value, bool, error) {
	if !obj.Has(name) {
		return json.Value{}, false, nil
	}
	v, err := obj.GetValue(name)
	if err != nil {
		return json.Value{}, false, err
	}
	return v, true, nil
}

func signWith(s signer, alg, kid string, c *Claims) (string, error) {
	if c.Locked() {
		return "", &Error{Kind: Locked, Msg: "claims already signed"}
	}

	obj := c.Object()

	iat := Clock().Unix()
	if existing, ok, err := getIfPresent(obj, "iat"); err != nil {
		return "", err
	} else if ok {
		if iat, err = existing.Integer(); err != nil {
			return "", err
		}
		if err := obj.SetFinalValue("iat", existing); err != nil {
			return "", err
		}
	} else {
		if err := obj.SetFinalValue("iat", json.NewInteger(iat)); err != nil {
			return "", err
		}
	}

	if err := stampFinal(obj, "jti", func() (json.Value, error) {
		return json.NewString(newJTI())
	}); err != nil {
		return "", err
	}

	if obj.Has("exp") {
		if err := stampFinal(obj, "exp", nil); err != nil {
			return "", err
		}
	} else if c.hasDuration {
		if err := obj.SetFinalValue("exp", json.NewInteger(iat+int64(c.duration/time.Second))); err != nil {
			return "", err
		}
	}

	if obj.Has("nbf") {
		if err := stampFinal(obj, "nbf", nil); err != nil {
			return "", err
		}
	} else if c.hasNbfOffset {
		if err := obj.SetFinalValue("nbf", json.NewInteger(iat+int64(c.nbfOffset/time.Second))); err != nil {
			return "", err
		}
	}

	header := json.NewObject()
	if err := header.SetValue("typ", mustJSONString("JWT")); err != nil {
		return "", err
	}
	if err := header.SetValue("alg", mustJSONString(alg)); err != nil {
		return "", err
	}
	if kid != "" {
		if err := header.SetValue("kid", mustJSONString(kid)); err != nil {
			return "", err
		}
	}

	headerText, err := json.ToJSON(json.NewObjectValue(header))
	if err != nil {
		return "", err
	}
	payloadText, err := json.ToJSON(json.NewObjectValue(obj))
	if err != nil {
		return "", err
	}

	headerB64 := base64url.EncodeToString([]byte(headerText))
	payloadB64 := base64url.EncodeToString([]byte(payloadText))
	signingInput := headerB64 + "." + payloadB64

	sig, err := s.Sign([]byte(signingInput))
	if err != nil {
		return "", err
	}

	obj.Lock()
	header.Lock()

	return signingInput + "." + base64url.EncodeToString(sig), nil
}

func mustJSONString(s string) json.Value {
	v, err := json.NewString(s)
	if err != nil {
		panic(err) // s is always a literal JWS header value here, always valid UTF-8.
	}
	return v
}
