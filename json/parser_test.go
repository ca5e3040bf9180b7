package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerPreservation(t *testing.T) {
	v, err := ParseObject(`{"n": 12345}`)
	require.NoError(t, err)

	n, err := v.GetValue("n")
	require.NoError(t, err)
	i, err := n.Integer()
	require.NoError(t, err)
	assert.EqualValues(t, 12345, i)

	text, err := ToJSON(NewObjectValue(v))
	require.NoError(t, err)
	assert.Contains(t, text, "12345")
	assert.NotContains(t, text, "1.2345e4")
}

func TestParseNonIntegerNumeric(t *testing.T) {
	v, err := ParseObject(`{"x":3.14}`)
	require.NoError(t, err)

	x, err := v.GetValue("x")
	require.NoError(t, err)
	assert.Equal(t, KindNumber, x.Kind())

	n, err := x.Number()
	require.NoError(t, err)
	assert.Equal(t, "3.14", n)

	text, err := ToJSON(NewObjectValue(v))
	require.NoError(t, err)
	assert.Contains(t, text, `"x":3.14`)
}

func TestParseEscapeAndUTF8(t *testing.T) {
	v, err := Parse("[\"\x5cu00e9\"]") // \x5c is a backslash, so the document holds the six-character JSON escape for U+00E9
	require.NoError(t, err)

	arr, err := v.Array()
	require.NoError(t, err)
	elem, err := arr.Get(0)
	require.NoError(t, err)

	s, err := elem.String()
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0xC3, 0xA9}), s)
}

func TestParseRejectsTrailingComma(t *testing.T) {
	_, err := Parse(`[1,2,]`)
	require.Error(t, err)
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	_, err := ParseObject(`{"a":1,"a":2}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: MalformedJSON})
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := Parse(`{} garbage`)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: MalformedJSON})
}

func TestParseObjectRequiresObject(t *testing.T) {
	_, err := ParseObject(`[1,2,3]`)
	require.Error(t, err)
}

func TestParseRejectsLiteralWithSuffix(t *testing.T) {
	_, err := Parse(`[nullable]`)
	require.Error(t, err)
}

func TestParseEnforcesRecursionDepth(t *testing.T) {
	lim := DefaultLimits()
	lim.RecursionDepth = 2

	_, err := Parse(`[[[1]]]`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseEnforcesArrayElemCount(t *testing.T) {
	lim := DefaultLimits()
	lim.ArrayElemCount = 2

	_, err := Parse(`[1,2,3]`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseEnforcesObjectMemberCount(t *testing.T) {
	lim := DefaultLimits()
	lim.ObjectMbrCount = 1

	_, err := ParseObject(`{"a":1,"b":2}`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseEnforcesStringSize(t *testing.T) {
	lim := DefaultLimits()
	lim.StringSize = 3

	_, err := Parse(`["abcdef"]`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseEnforcesNumeralLength(t *testing.T) {
	lim := DefaultLimits()
	lim.NumeralLength = 3

	_, err := Parse(`[12345]`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseEnforcesJSONStringSize(t *testing.T) {
	lim := DefaultLimits()
	lim.JSONStringSize = 4

	_, err := Parse(`[1,2,3]`, lim)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: LimitViolation})
}

func TestParseRejectsInvalidUTF8Byte(t *testing.T) {
	_, err := Parse("[\"\xff\"]")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: MalformedJSON})
}

func TestRoundTripStructuralEquality(t *testing.T) {
	src := `{"a":1,"b":[1,2,3],"c":{"d":"e"},"f":3.5,"g":null,"h":true}`
	v, err := Parse(src)
	require.NoError(t, err)

	text, err := ToJSON(v)
	require.NoError(t, err)

	v2, err := Parse(text)
	require.NoError(t, err)

	text2, err := ToJSON(v2)
	require.NoError(t, err)

	assert.Equal(t, text, text2)
}
