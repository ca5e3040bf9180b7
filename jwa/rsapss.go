package jwa

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

func init() {
	Register("PS256", &rsaPSSFactory{name: "PS256", hasher: crypto.SHA256})
	Register("PS384", &rsaPSSFactory{name: "PS384", hasher: crypto.SHA384})
	Register("PS512", &rsaPSSFactory{name: "PS512", hasher: crypto.SHA512})
}

type rsaPSSFactory struct {
	name   string
	hasher crypto.Hash
}

func (f *rsaPSSFactory) opts() *rsa.PSSOptions {
	return &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: f.hasher}
}

func (f *rsaPSSFactory) NewSigner(key interface{}, kid string) (Signer, error) {
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	return &rsaPSSSigner{name: f.name, hasher: f.hasher, opts: f.opts(), kid: kid, key: priv}, nil
}

func (f *rsaPSSFactory) NewVerifier(key interface{}, kid string) (Verifier, error) {
	pub, err := asRSAPublicKey(key)
	if err != nil {
		return nil, err
	}
	return &rsaPSSVerifier{name: f.name, hasher: f.hasher, opts: f.opts(), kid: kid, key: pub}, nil
}

type rsaPSSSigner struct {
	name   string
	hasher crypto.Hash
	opts   *rsa.PSSOptions
	kid    string
	key    *rsa.PrivateKey
}

func (s *rsaPSSSigner) Algorithm() string { return s.name }
func (s *rsaPSSSigner) KeyID() string     { return s.kid }

func (s *rsaPSSSigner) Sign(signingInput []byte) ([]byte, error) {
	h := s.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}
	return rsa.SignPSS(rand.Reader, s.key, s.hasher, h.Sum(nil), s.opts)
}

func (s *rsaPSSSigner) Close() error {
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

type rsaPSSVerifier struct {
	name   string
	hasher crypto.Hash
	opts   *rsa.PSSOptions
	kid    string
	key    *rsa.PublicKey
}

func (v *rsaPSSVerifier) Algorithm() string { return v.name }
func (v *rsaPSSVerifier) KeyID() string     { return v.kid }

func (v *rsaPSSVerifier) Verify(signingInput, signature []byte) (bool, error) {
	h := v.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return false, err
	}
	if err := rsa.VerifyPSS(v.key, v.hasher, h.Sum(nil), signature, v.opts); err != nil {
		return false, nil
	}
	return true, nil
}

func (v *rsaPSSVerifier) Close() error { return nil }
