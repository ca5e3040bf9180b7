package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayAppendAndGet(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.Append(NewInteger(1)))
	require.NoError(t, a.Append(NewInteger(2)))
	assert.Equal(t, 2, a.Len())

	v, err := a.Get(1)
	require.NoError(t, err)
	i, _ := v.Integer()
	assert.EqualValues(t, 2, i)
}

func TestArrayGetOutOfRange(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.Append(NewInteger(1)))

	_, err := a.Get(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: IndexOutOfRange})

	_, err = a.Get(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: IndexOutOfRange})
}

func TestArrayLockRejectsMutation(t *testing.T) {
	a := NewArray()
	a.Lock()
	assert.True(t, a.Locked())

	err := a.Append(NewInteger(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: Locked})
}

func TestArrayLockIsIdempotent(t *testing.T) {
	a := NewArray()
	a.Lock()
	a.Lock()
	assert.True(t, a.Locked())
}
