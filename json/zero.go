package json

import "runtime"

// secureZero overwrites b in place with zero bytes. The runtime.KeepAlive
// call prevents the compiler from proving the write dead and eliding it,
// which a plain "for i := range b { b[i] = 0 }" followed by no further use
// of b would otherwise be eligible for under escape analysis.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
