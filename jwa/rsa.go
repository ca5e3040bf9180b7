package jwa

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

func init() {
	Register("RS256", &rsaFactory{name: "RS256", hasher: crypto.SHA256})
	Register("RS384", &rsaFactory{name: "RS384", hasher: crypto.SHA384})
	Register("RS512", &rsaFactory{name: "RS512", hasher: crypto.SHA512})
}

type rsaFactory struct {
	name   string
	hasher crypto.Hash
}

func (f *rsaFactory) NewSigner(key interface{}, kid string) (Signer, error) {
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	return &rsaSigner{name: f.name, hasher: f.hasher, kid: kid, key: priv}, nil
}

func (f *rsaFactory) NewVerifier(key interface{}, kid string) (Verifier, error) {
	pub, err := asRSAPublicKey(key)
	if err != nil {
		return nil, err
	}
	return &rsaVerifier{name: f.name, hasher: f.hasher, kid: kid, key: pub}, nil
}

func asRSAPublicKey(key interface{}) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return k, nil
	case *rsa.PrivateKey:
		return &k.PublicKey, nil
	default:
		return nil, ErrInvalidKey
	}
}

type rsaSigner struct {
	name   string
	hasher crypto.Hash
	kid    string
	key    *rsa.PrivateKey
}

func (s *rsaSigner) Algorithm() string { return s.name }
func (s *rsaSigner) KeyID() string     { return s.kid }

func (s *rsaSigner) Sign(signingInput []byte) ([]byte, error) {
	h := s.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}
	return rsa.SignPKCS1v15(rand.Reader, s.key, s.hasher, h.Sum(nil))
}

func (s *rsaSigner) Close() error {
	if s.key != nil {
		secureZeroBigInt(s.key.D)
		for _, p := range s.key.Primes {
			secureZeroBigInt(p)
		}
		if pre := &s.key.Precomputed; pre.Dp != nil {
			secureZeroBigInt(pre.Dp)
			secureZeroBigInt(pre.Dq)
			secureZeroBigInt(pre.Qinv)
		}
	}
	return nil
}

type rsaVerifier struct {
	name   string
	hasher crypto.Hash
	kid    string
	key    *rsa.PublicKey
}

func (v *rsaVerifier) Algorithm() string { return v.name }
func (v *rsaVerifier) KeyID() string     { return v.kid }

func (v *rsaVerifier) Verify(signingInput, signature []byte) (bool, error) {
	h := v.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return false, err
	}
	if err := rsa.VerifyPKCS1v15(v.key, v.hasher, h.Sum(nil), signature); err != nil {
		return false, nil
	}
	return true, nil
}

func (v *rsaVerifier) Close() error { return nil }
