package json

// Limits bounds the resources a single Parse/ParseObject call may consume.
// The zero value is not valid; use DefaultLimits or Limits literal with
// every field set.
type Limits struct {
	// JSONStringSize is the maximum total length, in bytes, of the source
	// text handed to Parse/ParseObject.
	JSONStringSize int
	// RecursionDepth is the maximum nesting depth of arrays and objects.
	RecursionDepth int
	// NumeralLength is the maximum number of characters in one number
	// literal.
	NumeralLength int
	// StringSize is the maximum number of bytes in one decoded string
	// value.
	StringSize int
	// ArrayElemCount is the maximum number of elements in one array.
	ArrayElemCount int
	// ObjectMbrCount is the maximum number of members in one object.
	ObjectMbrCount int
}

// DefaultLimits returns the package's conservative default limits.
func DefaultLimits() Limits {
	return Limits{
		JSONStringSize: 4 * 1024 * 1024,
		RecursionDepth: 32,
		NumeralLength:  256,
		StringSize:     64 * 1024,
		ArrayElemCount: 4096,
		ObjectMbrCount: 256,
	}
}
