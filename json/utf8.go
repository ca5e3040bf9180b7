package json

// validateUTF8 checks that b is well-formed UTF-8 by byte pattern: a high
// bit of 0 is a single ASCII byte; a start byte must carry 2..6 leading
// 1-bits followed by a 0-bit (0xFF, with no 0-bit at all, is rejected
// outright); every continuation byte must match 10xxxxxx; and the
// claimed character length must fit within the remaining bytes. It does
// not reject overlong encodings or surrogate code points on its own —
// the string parser separately rejects unpaired \u surrogate escapes.
func validateUTF8(b []byte) error {
	n := len(b)
	for i := 0; i < n; {
		c := b[i]
		if c < 0x80 {
			i++
			continue
		}

		charLen := leadingOnes(c)
		if charLen < 2 || charLen > 6 {
			return errMalformed("malformed UTF-8: illegal start byte 0x%02x at offset %d", c, i)
		}
		if i+charLen > n {
			return errMalformed("malformed UTF-8: truncated %d-byte sequence at offset %d", charLen, i)
		}

		for j := 1; j < charLen; j++ {
			cb := b[i+j]
			if cb&0xC0 != 0x80 {
				return errMalformed("malformed UTF-8: bad continuation byte at offset %d", i+j)
			}
		}

		i += charLen
	}
	return nil
}

// leadingOnes counts the number of leading 1-bits in c, i.e. the number of
// bits set before the first 0-bit, reading from the most significant bit.
// A value of 0xFF (all ones, no 0-bit) returns 8, which callers reject as
// out of the legal 2..6 range.
func leadingOnes(c byte) int {
	n := 0
	for c&0x80 != 0 {
		n++
		c <<= 1
	}
	return n
}
