package jwt

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// jtiPrefix is a process-wide entropy source: one random UUID generated
// once at process start, then combined with a monotonic counter so every
// "jti" this process stamps is unique without hitting a random source on
// every call.
var jtiPrefix = uuid.New().String()

var jtiCounter atomic.Uint64

// newJTI returns a fresh token identifier unique within this process and
// extremely unlikely to collide across processes.
func newJTI() string {
	n := jtiCounter.Add(1)
	return fmt.Sprintf("%s-%d", jtiPrefix, n)
}
