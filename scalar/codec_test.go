package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/scalar"
)

// TestParse_Kinds checks one accepted literal per element kind.
func TestParse_Kinds(t *testing.T) {
	o := scalar.NewOptions()

	b, err := scalar.Parse[bool](" True ", o)
	require.NoError(t, err)
	require.True(t, b)

	i, err := scalar.Parse[int32]("-42", o)
	require.NoError(t, err)
	require.Equal(t, int32(-42), i)

	u, err := scalar.Parse[uint32]("4294967295", o)
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u)

	l, err := scalar.Parse[int64]("9223372036854775807", o)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), l)

	f, err := scalar.Parse[float32]("0.5", o)
	require.NoError(t, err)
	require.Equal(t, float32(0.5), f)

	d, err := scalar.Parse[float64]("\t-1e-300\n", o)
	require.NoError(t, err)
	require.Equal(t, -1e-300, d)
}

// TestParse_Errors verifies the sentinel for each failure class.
func TestParse_Errors(t *testing.T) {
	o := scalar.NewOptions()

	_, err := scalar.Parse[int32]("   ", o)
	require.ErrorIs(t, err, scalar.ErrEmptyInput)
	require.ErrorIs(t, err, scalar.ErrFormat)

	_, err = scalar.Parse[int32]("2147483648", o) // overflows int32
	require.ErrorIs(t, err, scalar.ErrFormat)

	_, err = scalar.Parse[uint32]("-1", o)
	require.ErrorIs(t, err, scalar.ErrFormat)

	_, err = scalar.Parse[bool]("yes", o)
	require.ErrorIs(t, err, scalar.ErrFormat)

	_, err = scalar.Parse[float64]("1.2.3", o)
	require.ErrorIs(t, err, scalar.ErrFormat)
}

// TestFormat_ShortestRoundTrip verifies that default rendering parses back exactly.
func TestFormat_ShortestRoundTrip(t *testing.T) {
	o := scalar.NewOptions()
	for _, v := range []float64{0, -0.1, 1.0 / 3, math.MaxFloat64, math.SmallestNonzeroFloat64, 123456789} {
		s := scalar.Format(v, o)
		got, err := scalar.Parse[float64](s, o)
		require.NoError(t, err, s)
		require.Equal(t, v, got, s)
	}
	for _, v := range []float32{0.1, 1.0 / 3, math.MaxFloat32} {
		s := scalar.Format(v, o)
		got, err := scalar.Parse[float32](s, o)
		require.NoError(t, err, s)
		require.Equal(t, v, got, s)
	}
	require.Equal(t, "0.1", scalar.Format(float32(0.1), o))
	require.Equal(t, "false", scalar.Format(false, o))
	require.Equal(t, "-7", scalar.Format(int64(-7), o))
}

// TestFormat_Verb applies a fmt verb per component.
func TestFormat_Verb(t *testing.T) {
	o := scalar.NewOptions(scalar.WithVerb("%.2f"))
	require.Equal(t, "3.14", scalar.Format(math.Pi, o))

	o = scalar.NewOptions(scalar.WithVerb("%03d"))
	require.Equal(t, "007", scalar.Format(int32(7), o))
}

// TestSplit_PartCount requires an exact component count.
func TestSplit_PartCount(t *testing.T) {
	o := scalar.NewOptions()

	parts, err := scalar.Split("1, 2, 3", 3, o)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, parts)

	_, err = scalar.Split("1, 2", 3, o)
	require.ErrorIs(t, err, scalar.ErrPartCount)
	require.ErrorIs(t, err, scalar.ErrFormat)

	_, err = scalar.Split("1,2,3", 3, o) // default separator is ", "
	require.ErrorIs(t, err, scalar.ErrPartCount)

	_, err = scalar.Split("", 3, o)
	require.ErrorIs(t, err, scalar.ErrEmptyInput)
}

// TestParseInto_FormatAll round-trips a component list with a custom separator.
func TestParseInto_FormatAll(t *testing.T) {
	o := scalar.NewOptions(scalar.WithSeparator(";"))
	src := []int64{1, -2, 3, 40}
	s := scalar.FormatAll(src, o)
	require.Equal(t, "1;-2;3;40", s)

	dst := make([]int64, 4)
	require.NoError(t, scalar.ParseInto(dst, " 1 ; -2;3 ;40", o))
	require.Equal(t, src, dst)

	err := scalar.ParseInto(dst, "1;x;3;4", o)
	require.ErrorIs(t, err, scalar.ErrFormat)
	require.Contains(t, err.Error(), "component 1")
}
