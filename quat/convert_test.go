package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/quat"
)

// TestWidening covers the lossless named conversions.
func TestWidening(t *testing.T) {
	qi := quat.QInt{X: -2, Y: 0, Z: 7, W: math.MaxInt32}
	require.Equal(t, quat.QLong{X: -2, Y: 0, Z: 7, W: math.MaxInt32}, quat.QIntToQLong(qi))
	require.Equal(t, quat.QDouble{X: -2, Y: 0, Z: 7, W: math.MaxInt32}, quat.QIntToQDouble(qi))
	require.Equal(t, quat.QFloat{X: -2, Y: 0, Z: 7, W: 2147483648}, quat.QIntToQFloat(qi), "float32 rounds beyond 2^24")
	require.Equal(t, quat.QDouble{X: 1 << 40, W: -3}, quat.QLongToQDouble(quat.QLong{X: 1 << 40, W: -3}))
	require.Equal(t, quat.QDouble{X: 0.5, Y: -0.25, W: 1}, quat.QFloatToQDouble(quat.QFloat{X: 0.5, Y: -0.25, W: 1}))
}

// TestNarrowing truncates toward zero.
func TestNarrowing(t *testing.T) {
	q := quat.New(1.9, -1.9, 0.4, -0.4)
	require.Equal(t, quat.New[int32](1, -1, 0, 0), quat.Convert[int32](q))
	require.Equal(t, quat.New[int64](1, -1, 0, 0), quat.Convert[int64](q))
	require.Equal(t, quat.New[float32](3, 4, 5, 6), quat.Convert[float32](quat.New[int64](3, 4, 5, 6)))
}

// TestBoolConversions test for non-zero and map back to 1/0.
func TestBoolConversions(t *testing.T) {
	require.Equal(t, quat.NewBool(true, false, true, true), quat.ToQBool(quat.New[int32](-3, 0, 1, 9)))
	require.Equal(t, quat.NewBool(true, false, false, true), quat.ToQBool(quat.New(math.NaN(), 0, -0.0, 0.1)))
	require.Equal(t, quat.New(1.0, 0, 1, 0), quat.FromQBool[float64](quat.NewBool(true, false, true, false)))
	require.Equal(t, quat.New[int64](0, 0, 0, 1), quat.FromQBool[int64](quat.NewBool(false, false, false, true)))
}
