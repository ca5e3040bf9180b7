package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/aegis-jwt/jwt/base64url"
	"github.com/aegis-jwt/jwt/json"
)

// JWK is a single JSON Web Key. It wraps the underlying parsed object so
// unrecognized members survive round-tripping instead of being discarded.
type JWK struct {
	obj *json.Object
}

// Parse parses a single JWK from text. It performs no kty-specific
// validation or key reconstruction; use ToKey, ToPublicKey, or Secret to
// turn the parsed members into Go key material once the caller is ready
// to consume it.
func Parse(text string) (*JWK, error) {
	obj, err := json.ParseObject(text)
	if err != nil {
		return nil, err
	}
	return &JWK{obj: obj}, nil
}

// ParseKey parses text as a single JWK and immediately resolves it to Go
// key material, dispatching on "kty": "oct" yields the raw secret bytes,
// "RSA"/"EC" yield a public key unless the JWK also carries "d", in which
// case they yield the corresponding private key.
func ParseKey(text string) (interface{}, error) {
	k, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return k.ToKey()
}

func (k *JWK) str(member string) string {
	v, err := k.obj.GetValue(member)
	if err != nil {
		return ""
	}
	s, err := v.String()
	if err != nil {
		return ""
	}
	return s
}

func (k *JWK) decodeBig(member string) (*big.Int, error) {
	b, err := base64url.DecodeString(k.str(member))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", member, err)
	}
	return new(big.Int).SetBytes(b), nil
}

// Kty returns the "kty" member ("RSA", "EC", "oct", "OKP").
func (k *JWK) Kty() string { return k.str("kty") }

// Kid returns the "kid" member, or "" if absent.
func (k *JWK) Kid() string { return k.str("kid") }

// Alg returns the "alg" member, or "" if absent.
func (k *JWK) Alg() string { return k.str("alg") }

// Use returns the "use" member, or "" if absent.
func (k *JWK) Use() string { return k.str("use") }

// Crv returns the "crv" member for EC/OKP keys, or "" if absent.
func (k *JWK) Crv() string { return k.str("crv") }

// IsPrivate reports whether k carries the private-key member for its kty
// ("d" for RSA/EC, "k" for oct).
func (k *JWK) IsPrivate() bool {
	switch k.Kty() {
	case "RSA", "EC":
		return k.obj.Has("d")
	case "oct":
		return k.obj.Has("k")
	default:
		return false
	}
}

// ToKey dispatches on "kty" to produce the Go key material this JWK
// describes: "oct" yields the raw secret bytes, "RSA"/"EC" yield a public
// key unless "d" is also present, in which case they yield the
// corresponding private key.
func (k *JWK) ToKey() (interface{}, error) {
	switch kty := k.Kty(); kty {
	case "oct":
		secret, err := k.Secret()
		if err != nil {
			return nil, &KeyImportFailed{Kty: kty, Err: err}
		}
		return secret, nil
	case "RSA":
		if k.obj.Has("d") {
			key, err := k.rsaPrivateKey()
			if err != nil {
				return nil, &KeyImportFailed{Kty: kty, Err: err}
			}
			return key, nil
		}
		return k.ToPublicKey()
	case "EC":
		if k.obj.Has("d") {
			key, err := k.ecPrivateKey()
			if err != nil {
				return nil, &KeyImportFailed{Kty: kty, Err: err}
			}
			return key, nil
		}
		return k.ToPublicKey()
	default:
		return nil, &KeyImportFailed{Kty: kty, Err: ErrUnsupportedKeyType}
	}
}

// Secret returns the raw shared-secret bytes of an "oct" JWK's "k"
// member. It fails with ErrUnsupportedKeyType for any other kty.
func (k *JWK) Secret() ([]byte, error) {
	if k.Kty() != "oct" {
		return nil, ErrUnsupportedKeyType
	}
	secret, err := base64url.DecodeString(k.str("k"))
	if err != nil {
		return nil, fmt.Errorf("decode k: %w", err)
	}
	return secret, nil
}

// ToPublicKey reconstructs the Go crypto public key this JWK describes,
// ignoring any private members present. Supported key types are "RSA"
// and "EC"; "oct" has no public half and returns ErrUnsupportedKeyType.
func (k *JWK) ToPublicKey() (interface{}, error) {
	switch kty := k.Kty(); kty {
	case "RSA":
		key, err := k.rsaPublicKey()
		if err != nil {
			return nil, &KeyImportFailed{Kty: kty, Err: err}
		}
		return key, nil
	case "EC":
		key, err := k.ecPublicKey()
		if err != nil {
			return nil, &KeyImportFailed{Kty: kty, Err: err}
		}
		return key, nil
	default:
		return nil, &KeyImportFailed{Kty: kty, Err: ErrUnsupportedKeyType}
	}
}

func (k *JWK) rsaPublicKey() (*rsa.PublicKey, error) {
	n, err := base64url.DecodeString(k.str("n"))
	if err != nil {
		return nil, fmt.Errorf("decode n: %w", err)
	}
	e, err := base64url.DecodeString(k.str("e"))
	if err != nil {
		return nil, fmt.Errorf("decode e: %w", err)
	}

	exp := 0
	for _, b := range e {
		exp = exp<<8 + int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: exp}, nil
}

// rsaPrivateKey reconstructs the full RSA private key, including the CRT
// parameters, from "d"/"p"/"q"/"dp"/"dq"/"qi". If the CRT members are
// absent it derives them from "d", "p", and "q" via Precompute.
func (k *JWK) rsaPrivateKey() (*rsa.PrivateKey, error) {
	pub, err := k.rsaPublicKey()
	if err != nil {
		return nil, err
	}
	d, err := k.decodeBig("d")
	if err != nil {
		return nil, err
	}

	priv := &rsa.PrivateKey{PublicKey: *pub, D: d}

	if k.obj.Has("p") && k.obj.Has("q") {
		p, err := k.decodeBig("p")
		if err != nil {
			return nil, err
		}
		q, err := k.decodeBig("q")
		if err != nil {
			return nil, err
		}
		priv.Primes = []*big.Int{p, q}

		if k.obj.Has("dp") && k.obj.Has("dq") && k.obj.Has("qi") {
			dp, err := k.decodeBig("dp")
			if err != nil {
				return nil, err
			}
			dq, err := k.decodeBig("dq")
			if err != nil {
				return nil, err
			}
			qi, err := k.decodeBig("qi")
			if err != nil {
				return nil, err
			}
			priv.Precomputed = rsa.PrecomputedValues{Dp: dp, Dq: dq, Qinv: qi}
		} else {
			priv.Precompute()
		}
	}

	return priv, nil
}

func (k *JWK) ecPublicKey() (*ecdsa.PublicKey, error) {
	curve, err := curveByName(k.Crv())
	if err != nil {
		return nil, err
	}

	x, err := base64url.DecodeString(k.str("x"))
	if err != nil {
		return nil, fmt.Errorf("decode x: %w", err)
	}
	y, err := base64url.DecodeString(k.str("y"))
	if err != nil {
		return nil, fmt.Errorf("decode y: %w", err)
	}

	return &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}, nil
}

// ecPrivateKey reconstructs the EC private key from "d" against the
// public point decoded from "x"/"y"/"crv".
func (k *JWK) ecPrivateKey() (*ecdsa.PrivateKey, error) {
	pub, err := k.ecPublicKey()
	if err != nil {
		return nil, err
	}
	d, err := k.decodeBig("d")
	if err != nil {
		return nil, err
	}
	return &ecdsa.PrivateKey{PublicKey: *pub, D: d}, nil
}

func curveByName(crv string) (elliptic.Curve, error) {
	switch crv {
	case "P-256":
		return elliptic.P256(), nil
	case "P-384":
		return elliptic.P384(), nil
	case "P-521":
		return elliptic.P521(), nil
	default:
		return nil, ErrUnsupportedCurve
	}
}

// privateOnlyMembers are stripped by ToPublic when deriving a public JWK
// from one that may carry private parameters.
var privateOnlyMembers = map[string]bool{
	"d": true, "p": true, "q": true, "dp": true, "dq": true, "qi": true,
}

// ToPublic derives a new JWK carrying only k's public parameters,
// stripping "d"/"p"/"q"/"dp"/"dq"/"qi" if present. It fails with
// ErrUnsupportedKeyType for "oct", which has no public half.
func (k *JWK) ToPublic() (*JWK, error) {
	switch kty := k.Kty(); kty {
	case "RSA", "EC":
		dup := json.NewObject()
		for _, name := range k.obj.Names() {
			if privateOnlyMembers[name] {
				continue
			}
			v, err := k.obj.GetValue(name)
			if err != nil {
				return nil, err
			}
			must(dup.SetValue(name, v))
		}
		return &JWK{obj: dup}, nil
	default:
		return nil, &KeyImportFailed{Kty: kty, Err: ErrUnsupportedKeyType}
	}
}

// Duplicate returns an independent copy of k: mutating the copy's
// underlying object (through a fresh JWK built on top of it) never
// affects k, and vice versa.
func (k *JWK) Duplicate() *JWK {
	dup := json.NewObject()
	for _, name := range k.obj.Names() {
		v, err := k.obj.GetValue(name)
		if err != nil {
			continue // unreachable: name came from Names(), GetValue cannot fail
		}
		must(dup.SetValue(name, v))
	}
	return &JWK{obj: dup}
}

// FromRSAPublicKey builds a JWK describing key, tagged with kid and alg.
func FromRSAPublicKey(kid, alg string, key *rsa.PublicKey) *JWK {
	obj := json.NewObject()
	must(obj.SetValue("kty", mustString("RSA")))
	if kid != "" {
		must(obj.SetValue("kid", mustString(kid)))
	}
	if alg != "" {
		must(obj.SetValue("alg", mustString(alg)))
	}
	must(obj.SetValue("n", mustString(base64url.EncodeToString(key.N.Bytes()))))
	must(obj.SetValue("e", mustString(base64url.EncodeToString(bigEndianBytes(key.E)))))
	return &JWK{obj: obj}
}

// FromRSAPrivateKey builds a JWK describing key's full private material,
// including its CRT parameters, tagged with kid and alg.
func FromRSAPrivateKey(kid, alg string, key *rsa.PrivateKey) *JWK {
	jwk := FromRSAPublicKey(kid, alg, &key.PublicKey)
	obj := jwk.obj

	must(obj.SetValue("d", mustString(base64url.EncodeToString(key.D.Bytes()))))
	if len(key.Primes) == 2 {
		key.Precompute()
		must(obj.SetValue("p", mustString(base64url.EncodeToString(key.Primes[0].Bytes()))))
		must(obj.SetValue("q", mustString(base64url.EncodeToString(key.Primes[1].Bytes()))))
		must(obj.SetValue("dp", mustString(base64url.EncodeToString(key.Precomputed.Dp.Bytes()))))
		must(obj.SetValue("dq", mustString(base64url.EncodeToString(key.Precomputed.Dq.Bytes()))))
		must(obj.SetValue("qi", mustString(base64url.EncodeToString(key.Precomputed.Qinv.Bytes()))))
	}
	return jwk
}

// FromECPublicKey builds a JWK describing key, tagged with kid and alg.
func FromECPublicKey(kid, alg string, key *ecdsa.PublicKey) (*JWK, error) {
	crv, err := nameByCurve(key.Curve)
	if err != nil {
		return nil, err
	}

	obj := json.NewObject()
	must(obj.SetValue("kty", mustString("EC")))
	must(obj.SetValue("crv", mustString(crv)))
	if kid != "" {
		must(obj.SetValue("kid", mustString(kid)))
	}
	if alg != "" {
		must(obj.SetValue("alg", mustString(alg)))
	}
	must(obj.SetValue("x", mustString(base64url.EncodeToString(key.X.Bytes()))))
	must(obj.SetValue("y", mustString(base64url.EncodeToString(key.Y.Bytes()))))
	return &JWK{obj: obj}, nil
}

// FromECPrivateKey builds a JWK describing key's full private material,
// tagged with kid and alg.
func FromECPrivateKey(kid, alg string, key *ecdsa.PrivateKey) (*JWK, error) {
	jwk, err := FromECPublicKey(kid, alg, &key.PublicKey)
	if err != nil {
		return nil, err
	}
	must(jwk.obj.SetValue("d", mustString(base64url.EncodeToString(key.D.Bytes()))))
	return jwk, nil
}

// FromOctSecret builds a JWK wrapping a shared secret, tagged with kid
// and alg.
func FromOctSecret(kid, alg string, secret []byte) *JWK {
	obj := json.NewObject()
	must(obj.SetValue("kty", mustString("oct")))
	if kid != "" {
		must(obj.SetValue("kid", mustString(kid)))
	}
	if alg != "" {
		must(obj.SetValue("alg", mustString(alg)))
	}
	must(obj.SetValue("k", mustString(base64url.EncodeToString(secret))))
	return &JWK{obj: obj}
}

func nameByCurve(curve elliptic.Curve) (string, error) {
	switch curve {
	case elliptic.P256():
		return "P-256", nil
	case elliptic.P384():
		return "P-384", nil
	case elliptic.P521():
		return "P-521", nil
	default:
		return "", ErrUnsupportedCurve
	}
}

func bigEndianBytes(i int) []byte {
	b := big.NewInt(int64(i)).Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

func mustString(s string) json.Value {
	v, err := json.NewString(s)
	if err != nil {
		panic(err) // s is always valid UTF-8 here: a Go string literal or a base64url alphabet string.
	}
	return v
}

func must(err error) {
	if err != nil {
		panic(err) // obj is freshly allocated and unlocked; SetValue cannot fail here.
	}
}

// ToJSON serializes the JWK back to compact JSON text.
func (k *JWK) ToJSON() (string, error) {
	return json.ToJSON(json.NewObjectValue(k.obj))
}
