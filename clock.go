package jwt

import "time"

// Clock is used to stamp "iat"/"exp"/"nbf" on Sign and to evaluate them on
// Decode. Override it in tests to control the current time.
//
// Usage: now := Clock()
var Clock = time.Now
