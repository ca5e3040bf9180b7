package jwa

import (
	"math/big"
	"runtime"
)

// secureZero overwrites b in place and pins it past the final write so the
// compiler cannot eliminate the zeroing as a dead store.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// secureZeroBigInt overwrites n's own internal limbs in place. n.Bytes()
// would only hand back a freshly allocated copy of n's value, leaving the
// real scalar in n.Bits() untouched; n.Bits() is documented to share
// storage with n itself, so zeroing it and resetting n destroys the
// actual private-key material rather than a throwaway rendering of it.
func secureZeroBigInt(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	n.SetInt64(0)
}
