// Package jwa provides the twelve whitelisted JSON Web Algorithms (HMAC,
// RSA PKCS#1 v1.5, RSA-PSS, and ECDSA, each in three hash strengths) behind
// a common Signer/Verifier contract and a process-wide registry. Each
// family's file (hmac.go, rsa.go, rsapss.go, ecdsa.go) registers its three
// algorithms with the Global registry from its own init(). A name with no
// registered factory, such as any name on a fresh NewRegistry, makes
// MakeSigner/MakeVerifier return ErrAlgorithmUnavailable rather than
// panic.
//
// "none" is never accepted, at the registry or the whitelist level — there
// is no way to register it.
package jwa
