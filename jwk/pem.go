package jwk

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// ParsePrivateKey scans data for a PEM block and decodes whichever private
// key type it contains: RSA (PKCS#1 or PKCS#8) or ECDSA (SEC1 or PKCS#8).
// It generalizes the single-family loaders a Go JWT library typically
// carries one per algorithm into a single entry point that can sit behind
// a JWK Set's "kid" lookup without the caller needing to know the key
// family up front.
func ParsePrivateKey(data []byte) (interface{}, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, &KeyImportFailed{Err: err}
	}

	switch key := key.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey:
		return key, nil
	default:
		return nil, &KeyImportFailed{Err: fmt.Errorf("unsupported PKCS8 key type %T", key)}
	}
}

// ParsePublicKey scans data for a PEM block and decodes whichever public
// key type it contains: a bare PKIX public key, or a certificate (in
// which case the certificate's public key is returned).
func ParsePublicKey(data []byte) (interface{}, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		return key, nil
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, &KeyImportFailed{Err: err}
	}

	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey, *ecdsa.PublicKey:
		return key, nil
	default:
		return nil, &KeyImportFailed{Err: fmt.Errorf("unsupported certificate key type %T", key)}
	}
}

// ScanBanners reports every PEM block type present in data, in order of
// appearance. Useful for diagnosing a file that concatenates more than
// one block (a certificate chain, or a key followed by its certificate).
func ScanBanners(data []byte) []string {
	var banners []string
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		banners = append(banners, block.Type)
	}
	return banners
}

// ParsePrivateKeyAsJWK decodes a PEM-encoded private key the same way
// ParsePrivateKey does, then emits its parameters as base64url-encoded
// big-endian integers wrapped in a JWK object carrying the given
// use/alg/kid, instead of handing back a bare Go crypto key.
func ParsePrivateKeyAsJWK(data []byte, use, alg, kid string) (*JWK, error) {
	key, err := ParsePrivateKey(data)
	if err != nil {
		return nil, err
	}
	return wrapPrivateKeyAsJWK(key, use, alg, kid)
}

// ParsePublicKeyAsJWK decodes a PEM-encoded public key or certificate the
// same way ParsePublicKey does, then wraps it as a JWK carrying the given
// use/alg/kid.
func ParsePublicKeyAsJWK(data []byte, use, alg, kid string) (*JWK, error) {
	key, err := ParsePublicKey(data)
	if err != nil {
		return nil, err
	}
	return wrapPublicKeyAsJWK(key, use, alg, kid)
}

func wrapPrivateKeyAsJWK(key interface{}, use, alg, kid string) (*JWK, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		jwk := FromRSAPrivateKey(kid, alg, k)
		setUse(jwk, use)
		return jwk, nil
	case *ecdsa.PrivateKey:
		jwk, err := FromECPrivateKey(kid, alg, k)
		if err != nil {
			return nil, err
		}
		setUse(jwk, use)
		return jwk, nil
	default:
		return nil, &KeyImportFailed{Err: fmt.Errorf("unsupported private key type %T", key)}
	}
}

func wrapPublicKeyAsJWK(key interface{}, use, alg, kid string) (*JWK, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		jwk := FromRSAPublicKey(kid, alg, k)
		setUse(jwk, use)
		return jwk, nil
	case *ecdsa.PublicKey:
		jwk, err := FromECPublicKey(kid, alg, k)
		if err != nil {
			return nil, err
		}
		setUse(jwk, use)
		return jwk, nil
	default:
		return nil, &KeyImportFailed{Err: fmt.Errorf("unsupported public key type %T", key)}
	}
}

func setUse(k *JWK, use string) {
	if use != "" {
		must(k.obj.SetValue("use", mustString(use)))
	}
}
