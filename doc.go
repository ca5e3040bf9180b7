// Package jwt signs and verifies JSON Web Tokens (RFC 7519) as compact
// JSON Web Signatures (RFC 7515), against the twelve algorithms jwa
// registers (RFC 7518) and key material jwk can parse (RFC 7517).
//
// A claims set starts empty:
//
//	claims := jwt.NewClaims()
//	claims.SetSubject("user-42")
//	claims.SetExpiry(time.Now().Add(15 * time.Minute))
//
//	token, err := jwt.Sign("HS256", secret, claims, "")
//
// Decode requires the caller to state which algorithm and key it
// trusts — it never lets the token's own header pick its verifier. A
// server holding one HMAC secret calls Decode directly; a server
// selecting among several keys by "kid" implements KeyLocator (jwk.Set
// and jwk.Keys both already do) and calls DecodeWithLocator, which still
// checks the header's "alg" against what the locator reports for that
// kid before trusting it.
//
//	claims, err := jwt.Decode(token, "HS256", secret)
//	claims, err := jwt.DecodeWithLocator(token, jwkSet)
//
// "iat" and "jti" are stamped automatically on Sign if absent, and any
// "exp"/"nbf" the caller set are locked at sign time: none of the four
// can be changed on a Claims value that Sign has already returned a
// token for.
package jwt
