package quat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// TestQBoolLogic covers every boolean operator.
func TestQBoolLogic(t *testing.T) {
	a := quat.NewBool(true, true, false, false)
	b := quat.NewBool(true, false, true, false)

	assert.Equal(t, quat.NewBool(false, false, true, true), a.Not())
	assert.Equal(t, quat.NewBool(true, false, false, false), a.And(b))
	assert.Equal(t, quat.NewBool(true, true, true, false), a.Or(b))
	assert.Equal(t, quat.NewBool(false, true, true, false), a.Xor(b))
	assert.Equal(t, quat.NewBool(false, true, true, true), a.Nand(b))
	assert.Equal(t, quat.NewBool(false, false, false, true), a.Nor(b))

	assert.False(t, a.All())
	assert.True(t, a.Any())
	assert.True(t, quat.BoolOnes().All())
	assert.False(t, quat.BoolZero().Any())
	assert.Equal(t, quat.BoolOnes(), quat.SplatBool(true))

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, vec.New4(true, false, false, true), a.EqualElem(b))
	assert.Equal(t, vec.New4(false, true, true, false), a.NotEqualElem(b))
}

// TestQBoolAccessors covers the indexer, views and text form.
func TestQBoolAccessors(t *testing.T) {
	b := quat.NewBool(true, false, true, true)
	require.Equal(t, 4, b.Len())

	v, err := b.At(1)
	require.NoError(t, err)
	require.False(t, v)
	_, err = b.At(4)
	require.ErrorIs(t, err, quat.ErrOutOfRange)

	require.NoError(t, b.Set(1, true))
	require.True(t, b.All())
	require.ErrorIs(t, b.Set(-1, false), quat.ErrOutOfRange)
	require.True(t, b.All(), "failed Set must not modify the value")

	require.Equal(t, [4]bool{true, true, true, true}, b.Array())
	require.Equal(t, []bool{true, true, true, true}, b.Values())
	require.Equal(t, vec.Splat3(true), b.XYZ())
	require.Equal(t, vec.Splat4(true), b.XYZW())
	require.Equal(t, quat.NewBool(false, true, false, true), quat.BoolFromVec4(vec.New4(false, true, false, true)))

	c := quat.NewBool(true, false, true, true)
	require.Equal(t, "true, false, true, true", c.String())
	require.Equal(t, "true|false|true|true", c.FormatWith(scalar.WithSeparator("|")))

	back, err := quat.ParseBool(c.String())
	require.NoError(t, err)
	require.Equal(t, c, back)

	_, err = quat.ParseBool("true, false")
	require.ErrorIs(t, err, quat.ErrPartCount)
}
