package jwa

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

func init() {
	register("HS256", crypto.SHA256)
	register("HS384", crypto.SHA384)
	register("HS512", crypto.SHA512)
}

func register(name string, hasher crypto.Hash) {
	Register(name, &hmacFactory{name: name, hasher: hasher})
}

type hmacFactory struct {
	name   string
	hasher crypto.Hash
}

func (f *hmacFactory) NewSigner(key interface{}, kid string) (Signer, error) {
	secret, ok := key.([]byte)
	if !ok || len(secret) == 0 {
		return nil, ErrInvalidKey
	}
	return &hmacSigner{name: f.name, hasher: f.hasher, kid: kid, secret: append([]byte(nil), secret...)}, nil
}

func (f *hmacFactory) NewVerifier(key interface{}, kid string) (Verifier, error) {
	secret, ok := key.([]byte)
	if !ok || len(secret) == 0 {
		return nil, ErrInvalidKey
	}
	return &hmacVerifier{name: f.name, hasher: f.hasher, kid: kid, secret: append([]byte(nil), secret...)}, nil
}

type hmacSigner struct {
	name   string
	hasher crypto.Hash
	kid    string
	secret []byte
}

func (s *hmacSigner) Algorithm() string { return s.name }
func (s *hmacSigner) KeyID() string     { return s.kid }

func (s *hmacSigner) Sign(signingInput []byte) ([]byte, error) {
	h := hmac.New(s.hasher.New, s.secret)
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func (s *hmacSigner) Close() error {
	secureZero(s.secret)
	return nil
}

type hmacVerifier struct {
	name   string
	hasher crypto.Hash
	kid    string
	secret []byte
}

func (v *hmacVerifier) Algorithm() string { return v.name }
func (v *hmacVerifier) KeyID() string     { return v.kid }

func (v *hmacVerifier) Verify(signingInput, signature []byte) (bool, error) {
	h := hmac.New(v.hasher.New, v.secret)
	if _, err := h.Write(signingInput); err != nil {
		return false, err
	}
	return hmac.Equal(h.Sum(nil), signature), nil
}

func (v *hmacVerifier) Close() error {
	secureZero(v.secret)
	return nil
}
