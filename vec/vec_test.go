package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// TestConstructors verifies that every constructor copies components in order.
func TestConstructors(t *testing.T) {
	require.Equal(t, vec.Int2{X: 1, Y: 2}, vec.New2[int32](1, 2))
	require.Equal(t, vec.Double3{X: 1, Y: 2, Z: 3}, vec.New3From2(vec.New2(1.0, 2), 3))
	require.Equal(t, vec.Long4{X: 1, Y: 2, Z: 3, W: 4}, vec.New4From3(vec.New3[int64](1, 2, 3), 4))
	require.Equal(t, vec.Float4{X: 1, Y: 2, Z: 3, W: 4}, vec.New4From2(vec.New2[float32](1, 2), 3, 4))
	require.Equal(t, vec.Bool3{X: true, Y: true, Z: true}, vec.Splat3(true))
	require.Equal(t, vec.Uint4{W: 1}, vec.UnitW4[uint32]())
	require.Equal(t, vec.Double2{X: 1, Y: 1}, vec.Ones2[float64]())
	require.Equal(t, vec.Bool4{}, vec.Zero4[bool]())
}

// TestIndexer covers At/Set including out-of-range indices.
func TestIndexer(t *testing.T) {
	v := vec.New4[int32](10, 20, 30, 40)
	for i, want := range []int32{10, 20, 30, 40} {
		got, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := v.At(4)
	require.ErrorIs(t, err, vec.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vec.ErrOutOfRange)

	require.NoError(t, v.Set(2, 99))
	require.Equal(t, int32(99), v.Z)
	before := v
	require.ErrorIs(t, v.Set(7, 1), vec.ErrOutOfRange)
	require.Equal(t, before, v, "failed Set must not mutate")

	v2 := vec.New2(1.5, 2.5)
	_, err = v2.At(2)
	require.ErrorIs(t, err, vec.ErrOutOfRange)
	v3 := vec.New3(true, false, true)
	require.ErrorIs(t, v3.Set(3, false), vec.ErrOutOfRange)
	require.Equal(t, 3, v3.Len())
	require.Equal(t, []bool{true, false, true}, v3.Values())
	require.Equal(t, [2]float64{1.5, 2.5}, v2.Array())
}

// TestParseFormat_RoundTrip checks Parse(String(v)) == v for every arity.
func TestParseFormat_RoundTrip(t *testing.T) {
	d4 := vec.New4(0.1, -2.5e10, math.MaxFloat64, 7)
	got4, err := vec.Parse4[float64](d4.String())
	require.NoError(t, err)
	require.Equal(t, d4, got4)

	u3 := vec.New3[uint32](0, 1, math.MaxUint32)
	require.Equal(t, "0, 1, 4294967295", u3.String())
	got3, err := vec.Parse3[uint32](u3.String())
	require.NoError(t, err)
	require.Equal(t, u3, got3)

	b2 := vec.New2(true, false)
	got2, err := vec.Parse2[bool](b2.String())
	require.NoError(t, err)
	require.Equal(t, b2, got2)
}

// TestParse_Errors verifies the sentinel for each failure class.
func TestParse_Errors(t *testing.T) {
	_, err := vec.Parse3[int32]("1, 2")
	require.ErrorIs(t, err, vec.ErrPartCount)
	_, err = vec.Parse3[int32]("1, 2, 3, 4")
	require.ErrorIs(t, err, vec.ErrPartCount)
	_, err = vec.Parse2[float32]("1, abc")
	require.ErrorIs(t, err, vec.ErrFormat)
	_, err = vec.Parse4[bool]("")
	require.ErrorIs(t, err, vec.ErrEmptyInput)
}

// TestTryParse returns zero and false on failure.
func TestTryParse(t *testing.T) {
	v, ok := vec.TryParse4[int64]("1, 2, 3, 4")
	require.True(t, ok)
	require.Equal(t, vec.New4[int64](1, 2, 3, 4), v)

	v, ok = vec.TryParse4[int64]("1, 2, x, 4")
	require.False(t, ok)
	require.Equal(t, vec.Long4{}, v)

	v2, ok := vec.TryParse2[float32]("")
	require.False(t, ok)
	require.Equal(t, vec.Float2{}, v2)

	v3, ok := vec.TryParse3[int32]("1|2|3", scalar.WithSeparator("|"))
	require.True(t, ok)
	require.Equal(t, vec.New3[int32](1, 2, 3), v3)
}

// TestFormatWith applies separator and verb options.
func TestFormatWith(t *testing.T) {
	v := vec.New3(1.0, 2.25, -3)
	require.Equal(t, "1.00 2.25 -3.00", v.FormatWith(scalar.WithSeparator(" "), scalar.WithVerb("%.2f")))
}
