package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/vec"
)

// TestComponentwise covers Add, Sub, Neg, Scale, Div and DivElem.
func TestComponentwise(t *testing.T) {
	a := quat.New[int32](1, 2, 3, 4)
	b := quat.New[int32](5, 6, 7, 8)
	assert.Equal(t, quat.New[int32](6, 8, 10, 12), a.Add(b))
	assert.Equal(t, quat.New[int32](4, 4, 4, 4), b.Sub(a))
	assert.Equal(t, quat.New[int32](-1, -2, -3, -4), a.Neg())
	assert.Equal(t, quat.New[int32](3, 6, 9, 12), a.Scale(3))
	assert.Equal(t, quat.New[int32](2, 3, 3, 4), b.Div(2), "integer division truncates")
	assert.Equal(t, quat.New[int32](5, 3, 2, 2), b.DivElem(a))
	assert.Equal(t, int32(70), a.Dot(b))
	assert.Equal(t, int32(30), a.LengthSqr())
	assert.Equal(t, quat.New[int32](-1, -2, -3, 4), a.Conjugate())
}

// TestDivisionByZero keeps native semantics and offers SafeDiv.
func TestDivisionByZero(t *testing.T) {
	qi := quat.New[int64](1, 2, 3, 4)
	var zero int64
	require.Panics(t, func() { _ = qi.Div(zero) })
	require.Panics(t, func() { _ = qi.DivElem(quat.New[int64](1, 1, 0, 1)) })

	_, err := qi.SafeDiv(0)
	require.ErrorIs(t, err, quat.ErrDivideByZero)
	got, err := qi.SafeDiv(2)
	require.NoError(t, err)
	require.Equal(t, quat.New[int64](0, 1, 1, 2), got)

	qf := quat.New(1.0, -1, 0, 2)
	inf, err := qf.SafeDiv(0)
	require.NoError(t, err, "float divisors are never rejected")
	require.True(t, math.IsInf(inf.X, 1))
	require.True(t, math.IsInf(inf.Y, -1))
	require.True(t, math.IsNaN(inf.Z))
	require.Equal(t, vec.New4(false, false, true, false), quat.IsNaN(qf.Div(0)))
}

// TestHamiltonProduct checks basis products, a generic case and identity.
func TestHamiltonProduct(t *testing.T) {
	i, j, k := quat.UnitX[int32](), quat.UnitY[int32](), quat.UnitZ[int32]()
	one := quat.Identity[int32]()
	require.Equal(t, k, i.Mul(j))
	require.Equal(t, k.Neg(), j.Mul(i), "product is not commutative")
	require.Equal(t, i, j.Mul(k))
	require.Equal(t, j, k.Mul(i))
	require.Equal(t, one.Neg(), i.Mul(i))

	a := quat.New[int32](1, 2, 3, 4)
	b := quat.New[int32](5, 6, 7, 8)
	require.Equal(t, quat.New[int32](24, 48, 48, -6), a.Mul(b))
	require.Equal(t, a, one.Mul(a))
	require.Equal(t, a, a.Mul(one))
}

// TestComparisons returns one flag per component.
func TestComparisons(t *testing.T) {
	a := quat.New(1.0, 2, 3, 4)
	b := quat.New(1.0, 5, 0, 4)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, vec.New4(true, false, false, true), a.EqualElem(b))
	assert.Equal(t, vec.New4(false, true, true, false), a.NotEqualElem(b))
	assert.Equal(t, vec.New4(false, true, false, false), a.Less(b))
	assert.Equal(t, vec.New4(true, true, false, true), a.LessEqual(b))
	assert.Equal(t, vec.New4(false, false, true, false), a.Greater(b))
	assert.Equal(t, vec.New4(true, false, true, true), a.GreaterEqual(b))

	n := quat.NaN[float64]()
	assert.False(t, n.Equal(n), "NaN never equals NaN")
	assert.False(t, vec.Any4(n.EqualElem(n)))
}

// TestFloatPredicates classifies each component.
func TestFloatPredicates(t *testing.T) {
	q := quat.New(math.NaN(), 0, math.Inf(1), 1)
	assert.Equal(t, vec.New4(true, false, false, false), quat.IsNaN(q))
	assert.Equal(t, vec.New4(false, false, true, false), quat.IsInf(q))
	assert.Equal(t, vec.New4(false, true, false, true), quat.IsFinite(q))
}

// TestRotateVecInteger uses exact integer rotations.
func TestRotateVecInteger(t *testing.T) {
	v := vec.New3[int32](1, 2, 3)
	require.Equal(t, v, quat.RotateVec3(quat.Identity[int32](), v))
	// (0,0,1,0) is a half turn about Z.
	require.Equal(t, vec.New3[int32](-1, -2, 3), quat.RotateVec3(quat.UnitZ[int32](), v))
	require.Equal(t, vec.New4[int32](1, -2, -3, 9), quat.RotateVec4(quat.UnitX[int32](), vec.New4[int32](1, 2, 3, 9)))
}
