package jwk

import "github.com/aegis-jwt/jwt/json"

// Set is a JSON Web Key Set: an unordered bag of keys, indexed here by
// "kid" the way a verifier actually consumes one.
type Set struct {
	keys  []*JWK
	byKid map[string]*JWK
}

// ParseSet parses a JWK Set document (a JSON object with a "keys" array
// member) from text.
func ParseSet(text string) (*Set, error) {
	obj, err := json.ParseObject(text)
	if err != nil {
		return nil, err
	}

	keysVal, err := obj.GetValue("keys")
	if err != nil {
		return nil, err
	}
	arr, err := keysVal.Array()
	if err != nil {
		return nil, err
	}

	set := &Set{byKid: make(map[string]*JWK, arr.Len())}
	for i := 0; i < arr.Len(); i++ {
		elem, err := arr.Get(i)
		if err != nil {
			return nil, err
		}
		elemObj, err := elem.Object()
		if err != nil {
			return nil, err
		}

		jwk := &JWK{obj: elemObj}
		set.keys = append(set.keys, jwk)
		if kid := jwk.Kid(); kid != "" {
			set.byKid[kid] = jwk
		}
	}

	return set, nil
}

// Keys returns every key in the set, in document order.
func (s *Set) Keys() []*JWK { return s.keys }

// Locate implements jwt's KeyLocator contract: it returns the
// verification key and algorithm name for kid, or ok == false if no key
// in the set carries that kid. An "oct" entry yields its raw secret
// bytes; "RSA"/"EC" entries yield their public key, private parameters
// discarded, since Locate only ever needs to verify.
func (s *Set) Locate(kid string) (alg string, key interface{}, ok bool) {
	jwk, found := s.byKid[kid]
	if !found {
		return "", nil, false
	}

	var (
		resolved interface{}
		err      error
	)
	if jwk.Kty() == "oct" {
		resolved, err = jwk.Secret()
	} else {
		resolved, err = jwk.ToPublicKey()
	}
	if err != nil {
		return "", nil, false
	}

	return jwk.Alg(), resolved, true
}
