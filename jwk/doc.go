// Package jwk parses JSON Web Keys and Key Sets, and scans PEM text for
// RSA and ECDSA key material. It exists to feed jwa.Signer/Verifier
// construction: ToPublicKey, ParsePrivateKey, and the Set/Keys locators
// all end at the same handful of Go crypto key types jwa's factories
// accept.
package jwk
