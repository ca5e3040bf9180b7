// Package base64url implements the unpadded, URL-safe base64 codec used
// for every segment of a compact JWS: header, payload, and signature.
package base64url

import (
	"encoding/base64"
	"errors"
)

// ErrIllegalLength is returned by Decode when src's length is not
// congruent to 0, 2, or 3 modulo 4 — the only residues a valid unpadded
// base64url string can have.
var ErrIllegalLength = errors.New("base64url: illegal encoded length")

// Encode returns the unpadded, URL-safe base64 encoding of src.
func Encode(src []byte) []byte {
	buf := make([]byte, base64.RawURLEncoding.EncodedLen(len(src)))
	base64.RawURLEncoding.Encode(buf, src)
	return buf
}

// EncodeToString returns the unpadded, URL-safe base64 encoding of src as
// a string.
func EncodeToString(src []byte) string {
	return base64.RawURLEncoding.EncodeToString(src)
}

// Decode decodes src, which must be unpadded URL-safe base64 text whose
// length is congruent to 0, 2, or 3 modulo 4. Any other length, or any
// byte outside the URL-safe alphabet, is rejected.
func Decode(src []byte) ([]byte, error) {
	if n := len(src) % 4; n == 1 {
		return nil, ErrIllegalLength
	}

	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(src)))
	n, err := base64.RawURLEncoding.Decode(buf, src)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// DecodeString decodes s the same way Decode does.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
