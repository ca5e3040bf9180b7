package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSetAndGetValue(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.SetValue("a", NewInteger(1)))
	require.NoError(t, o.SetValue("b", NewInteger(2)))

	v, err := o.GetValue("a")
	require.NoError(t, err)
	i, _ := v.Integer()
	assert.EqualValues(t, 1, i)

	_, err = o.GetValue("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: UnknownMember})
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.SetValue("z", NewInteger(1)))
	require.NoError(t, o.SetValue("a", NewInteger(2)))
	require.NoError(t, o.SetValue("m", NewInteger(3)))

	assert.Equal(t, []string{"z", "a", "m"}, o.Names())
}

func TestObjectOverwritesNonFinalMember(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.SetValue("a", NewInteger(1)))
	require.NoError(t, o.SetValue("a", NewInteger(2)))

	v, _ := o.GetValue("a")
	i, _ := v.Integer()
	assert.EqualValues(t, 2, i)
	assert.Equal(t, []string{"a"}, o.Names())
}

func TestObjectFinalMemberCannotBeOverwritten(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.SetFinalValue("exp", NewInteger(100)))
	assert.True(t, o.IsFinal("exp"))

	err := o.SetValue("exp", NewInteger(200))
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: FinalMember})

	err = o.SetFinalValue("exp", NewInteger(200))
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: FinalMember})
}

func TestObjectLockRejectsMutation(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.SetValue("a", NewInteger(1)))
	o.Lock()

	err := o.SetValue("b", NewInteger(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: Locked})
}
