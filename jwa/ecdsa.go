package jwa

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"math/big"
)

func init() {
	Register("ES256", &ecdsaFactory{name: "ES256", hasher: crypto.SHA256, curveBits: 256, keySize: 32})
	Register("ES384", &ecdsaFactory{name: "ES384", hasher: crypto.SHA384, curveBits: 384, keySize: 48})
	Register("ES512", &ecdsaFactory{name: "ES512", hasher: crypto.SHA512, curveBits: 521, keySize: 66})
}

type ecdsaFactory struct {
	name      string
	hasher    crypto.Hash
	curveBits int
	keySize   int
}

func (f *ecdsaFactory) NewSigner(key interface{}, kid string) (Signer, error) {
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	if priv.Curve.Params().BitSize != f.curveBits {
		return nil, ErrInvalidKey
	}
	return &ecdsaSigner{name: f.name, hasher: f.hasher, keySize: f.keySize, kid: kid, key: priv}, nil
}

func (f *ecdsaFactory) NewVerifier(key interface{}, kid string) (Verifier, error) {
	pub, err := asECDSAPublicKey(key)
	if err != nil {
		return nil, err
	}
	if pub.Curve.Params().BitSize != f.curveBits {
		return nil, ErrInvalidKey
	}
	return &ecdsaVerifier{name: f.name, hasher: f.hasher, keySize: f.keySize, kid: kid, key: pub}, nil
}

func asECDSAPublicKey(key interface{}) (*ecdsa.PublicKey, error) {
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		return k, nil
	case *ecdsa.PrivateKey:
		return &k.PublicKey, nil
	default:
		return nil, ErrInvalidKey
	}
}

type ecdsaSigner struct {
	name    string
	hasher  crypto.Hash
	keySize int
	kid     string
	key     *ecdsa.PrivateKey
}

func (s *ecdsaSigner) Algorithm() string { return s.name }
func (s *ecdsaSigner) KeyID() string     { return s.kid }

func (s *ecdsaSigner) Sign(signingInput []byte) ([]byte, error) {
	h := s.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}
	r, sVal, err := ecdsa.Sign(rand.Reader, s.key, h.Sum(nil))
	if err != nil {
		return nil, err
	}

	rBytes := r.Bytes()
	rPadded := make([]byte, s.keySize)
	copy(rPadded[s.keySize-len(rBytes):], rBytes)

	sBytes := sVal.Bytes()
	sPadded := make([]byte, s.keySize)
	copy(sPadded[s.keySize-len(sBytes):], sBytes)

	return append(rPadded, sPadded...), nil
}

func (s *ecdsaSigner) Close() error {
	if s.key != nil {
		secureZeroBigInt(s.key.D)
	}
	return nil
}

type ecdsaVerifier struct {
	name    string
	hasher  crypto.Hash
	keySize int
	kid     string
	key     *ecdsa.PublicKey
}

func (v *ecdsaVerifier) Algorithm() string { return v.name }
func (v *ecdsaVerifier) KeyID() string     { return v.kid }

func (v *ecdsaVerifier) Verify(signingInput, signature []byte) (bool, error) {
	if len(signature) != 2*v.keySize {
		return false, nil
	}

	r := new(big.Int).SetBytes(signature[:v.keySize])
	s := new(big.Int).SetBytes(signature[v.keySize:])

	h := v.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return false, err
	}

	return ecdsa.Verify(v.key, h.Sum(nil), r, s), nil
}

func (v *ecdsaVerifier) Close() error { return nil }
