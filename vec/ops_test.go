package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/vec"
)

// TestCompare returns one boolean per component.
func TestCompare(t *testing.T) {
	a := vec.New4[int32](1, 2, 3, 4)
	b := vec.New4[int32](4, 2, 1, 4)
	assert.Equal(t, vec.New4(false, true, false, true), vec.Equal4(a, b))
	assert.Equal(t, vec.New4(true, false, true, false), vec.NotEqual4(a, b))
	assert.Equal(t, vec.New4(true, false, false, false), vec.Less4(a, b))
	assert.Equal(t, vec.New4(true, true, false, true), vec.LessEqual4(a, b))
	assert.Equal(t, vec.New4(false, false, true, false), vec.Greater4(a, b))
	assert.Equal(t, vec.New4(false, true, true, true), vec.GreaterEqual4(a, b))

	n := math.NaN()
	assert.Equal(t, vec.New2(false, true), vec.Equal2(vec.New2(n, 1), vec.New2(n, 1)), "NaN never equals NaN")
	assert.Equal(t, vec.New3(true, false, true), vec.Equal3(vec.New3(true, true, false), vec.New3(true, false, false)))
	assert.Equal(t, vec.New2(false, true), vec.Less2(vec.New2[uint32](3, 0), vec.New2[uint32](1, 1)))
	assert.Equal(t, vec.New3(true, false, false), vec.Greater3(vec.New3[int64](2, 0, 0), vec.New3[int64](1, 0, 1)))
}

// TestLogic covers reductions and elementwise logic.
func TestLogic(t *testing.T) {
	a := vec.New4(true, true, false, false)
	b := vec.New4(true, false, true, false)
	assert.Equal(t, vec.New4(true, false, false, false), vec.And4(a, b))
	assert.Equal(t, vec.New4(true, true, true, false), vec.Or4(a, b))
	assert.Equal(t, vec.New4(false, true, true, false), vec.Xor4(a, b))
	assert.Equal(t, vec.New4(false, false, true, true), vec.Not4(a))
	assert.False(t, vec.All4(a))
	assert.True(t, vec.Any4(a))
	assert.True(t, vec.All2(vec.Splat2(true)))
	assert.False(t, vec.Any3(vec.Zero3[bool]()))
	assert.Equal(t, vec.New2(false, true), vec.Not2(vec.New2(true, false)))
	assert.Equal(t, vec.New3(false, true, false), vec.Xor3(vec.New3(true, true, false), vec.New3(true, false, false)))
}

// TestArith covers the helpers used by quaternion rotation.
func TestArith(t *testing.T) {
	x := vec.UnitX3[float64]()
	y := vec.UnitY3[float64]()
	require.Equal(t, vec.UnitZ3[float64](), vec.Cross(x, y))
	require.Equal(t, vec.New3(-0.0, 0, -1), vec.Cross(y, x))
	require.Equal(t, 0.0, vec.Dot3(x, y))
	require.Equal(t, vec.New3(1.0, 1, 0), vec.Add3(x, y))
	require.Equal(t, vec.New3(1.0, -1, 0), vec.Sub3(x, y))
	require.Equal(t, vec.New3(3.0, 0, 0), vec.Scale3(x, 3))
	require.Equal(t, int32(11), vec.Dot2(vec.New2[int32](1, 2), vec.New2[int32](3, 4)))
	require.Equal(t, vec.New4[int64](2, 2, 2, 2), vec.Add4(vec.Ones4[int64](), vec.Ones4[int64]()))
	require.Equal(t, float32(30), vec.Dot4(vec.New4[float32](1, 2, 3, 4), vec.New4[float32](1, 2, 3, 4)))
	require.Equal(t, vec.New2[uint32](2, 4), vec.Scale2(vec.New2[uint32](1, 2), 2))
	require.Equal(t, vec.New2(0.5, 0), vec.Sub2(vec.New2(1.0, 1), vec.New2(0.5, 1)))
	require.Equal(t, vec.New4(0.0, 0, 0, 0), vec.Sub4(vec.Ones4[float64](), vec.Ones4[float64]()))
	require.Equal(t, vec.New2[int32](3, 3), vec.Add2(vec.New2[int32](1, 2), vec.New2[int32](2, 1)))
	require.Equal(t, vec.New4(2.0, 4, 6, 8), vec.Scale4(vec.New4(1.0, 2, 3, 4), 2))

	v := vec.New3(3.0, 0, 4)
	require.Equal(t, 5.0, vec.Length3(v))
	require.InDelta(t, 1.0, vec.Length3(vec.Normalize3(v)), 1e-15)
}

// TestConvert covers truncating casts and the boolean mappings.
func TestConvert(t *testing.T) {
	require.Equal(t, vec.New2[int32](1, -2), vec.Convert2[int32](vec.New2(1.9, -2.9)))
	require.Equal(t, vec.New3[float64](1, 2, 3), vec.Convert3[float64](vec.New3[int32](1, 2, 3)))
	require.Equal(t, vec.New4[float32](0.5, 1, 2, 3), vec.Convert4[float32](vec.New4(0.5, 1, 2, 3)))
	require.Equal(t, vec.New4(true, false, true, true), vec.ToBool4(vec.New4[int32](5, 0, -1, 1)))
	require.Equal(t, vec.New2(false, true), vec.ToBool2(vec.New2[uint32](0, 9)))
	require.Equal(t, vec.New3(true, false, true), vec.ToBool3(vec.New3(0.1, 0, math.NaN())))
	require.Equal(t, vec.New3[float32](1, 0, 1), vec.FromBool3[float32](vec.New3(true, false, true)))
	require.Equal(t, vec.New2[int64](0, 1), vec.FromBool2[int64](vec.New2(false, true)))
	require.Equal(t, vec.New4[uint32](1, 1, 0, 0), vec.FromBool4[uint32](vec.New4(true, true, false, false)))
}
