package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvglm/vec"
)

// TestImageMathInterop round-trips through the x/image array vectors.
func TestImageMathInterop(t *testing.T) {
	require.Equal(t, f32.Vec2{1, 2}, vec.ToF32Vec2(vec.New2[int32](1, 2)))
	require.Equal(t, vec.New2(1.0, 2), vec.FromF64Vec2[float64](f64.Vec2{1, 2}))

	v3 := vec.New3[float32](0.5, -1, 2)
	require.Equal(t, v3, vec.FromF32Vec3[float32](vec.ToF32Vec3(v3)))
	require.Equal(t, f64.Vec3{0.5, -1, 2}, vec.ToF64Vec3(v3))
	require.Equal(t, vec.New3[int64](1, 2, 3), vec.FromF64Vec3[int64](f64.Vec3{1.2, 2.7, 3}))

	v4 := vec.New4(1.0, 2, 3, 4)
	require.Equal(t, f64.Vec4{1, 2, 3, 4}, vec.ToF64Vec4(v4))
	require.Equal(t, f32.Vec4{1, 2, 3, 4}, vec.ToF32Vec4(v4))
	require.Equal(t, v4, vec.FromF64Vec4[float64](vec.ToF64Vec4(v4)))
	require.Equal(t, vec.New4[float32](1, 2, 3, 4), vec.FromF32Vec4[float32](f32.Vec4{1, 2, 3, 4}))
	require.Equal(t, f64.Vec2{3, 4}, vec.ToF64Vec2(vec.New2[uint32](3, 4)))
	require.Equal(t, vec.New2[float32](3, 4), vec.FromF32Vec2[float32](f32.Vec2{3, 4}))
}
