package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/vec"
)

// TestSwizzle_ReadIdentity verifies that the full in-order word is the identity.
func TestSwizzle_ReadIdentity(t *testing.T) {
	v4 := vec.New4[int32](1, 2, 3, 4)
	require.Equal(t, v4, v4.XYZW())
	require.Equal(t, v4, v4.RGBA())

	v3 := vec.New3(1.5, 2.5, 3.5)
	require.Equal(t, v3, v3.XYZ())
	require.Equal(t, v3, v3.RGB())

	v2 := vec.New2[uint32](7, 8)
	require.Equal(t, v2, v2.XY())
	require.Equal(t, v2, v2.RG())
}

// TestSwizzle_ReadPermutations checks reordering, truncation, widening and repetition.
func TestSwizzle_ReadPermutations(t *testing.T) {
	v := vec.New4[int64](1, 2, 3, 4)
	require.Equal(t, vec.New3(v.Z, v.Y, v.X), v.ZYX())
	require.Equal(t, vec.New3(v.Z, v.Y, v.X), v.BGR())
	require.Equal(t, vec.New2[int64](4, 1), v.WX())
	require.Equal(t, vec.New2[int64](4, 1), v.AR())
	require.Equal(t, vec.New4[int64](4, 4, 1, 2), v.WWXY())

	b := vec.New4(true, false, true, true)
	require.Equal(t, vec.New4(true, true, true, true), b.XXZZ())
	require.Equal(t, vec.New4(true, true, true, true), b.RRBB())

	// Narrow sources can produce wider results.
	v2 := vec.New2[float32](1, 2)
	require.Equal(t, vec.New4[float32](2, 1, 2, 1), v2.YXYX())
	require.Equal(t, vec.New3[float32](1, 1, 2), v2.RRG())
	v3 := vec.New3[int32](1, 2, 3)
	require.Equal(t, vec.New4[int32](3, 3, 2, 1), v3.ZZYX())
}

// TestSwizzle_WriteThenRead assigns through a setter and reads back,
// checking that untouched components keep their values.
func TestSwizzle_WriteThenRead(t *testing.T) {
	v := vec.New4(1.0, 2, 3, 4)
	v.SetXY(vec.New2(10.0, 20))
	require.Equal(t, vec.New2(10.0, 20), v.XY())
	require.Equal(t, 3.0, v.Z)
	require.Equal(t, 4.0, v.W)

	v.SetZYX(vec.New3(-1.0, -2, -3))
	require.Equal(t, vec.New4(-3.0, -2, -1, 4), v)

	v.SetABGR(vec.New4(0.0, 1, 2, 3))
	require.Equal(t, vec.New4(3.0, 2, 1, 0), v)

	v3 := vec.New3[int32](1, 2, 3)
	v3.SetZX(vec.New2[int32](9, 8))
	require.Equal(t, vec.New3[int32](8, 2, 9), v3)
	v3.SetBG(vec.New2[int32](0, 0))
	require.Equal(t, vec.New3[int32](8, 0, 0), v3)

	v2 := vec.New2(true, false)
	v2.SetYX(vec.New2(true, false))
	require.Equal(t, vec.New2(false, true), v2)
	v2.SetRG(vec.New2(true, true))
	require.Equal(t, vec.Splat2(true), v2)
}
