package quat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// TestConstructors checks the named constants and vector-based constructors.
func TestConstructors(t *testing.T) {
	assert.Equal(t, quat.QDouble{}, quat.Zero[float64]())
	assert.Equal(t, quat.New[int32](1, 1, 1, 1), quat.Ones[int32]())
	assert.Equal(t, quat.New[float32](0, 0, 0, 1), quat.Identity[float32]())
	assert.Equal(t, quat.Identity[int64](), quat.UnitW[int64]())
	assert.Equal(t, quat.New(1.0, 0, 0, 0), quat.UnitX[float64]())
	assert.Equal(t, quat.New(0.0, 1, 0, 0), quat.UnitY[float64]())
	assert.Equal(t, quat.New(0.0, 0, 1, 0), quat.UnitZ[float64]())
	assert.Equal(t, quat.New[int32](7, 7, 7, 7), quat.Splat[int32](7))
	assert.Equal(t, quat.New(1.0, 2, 3, 4), quat.FromVec3(vec.New3(1.0, 2, 3), 4))
	assert.Equal(t, quat.New(1.0, 2, 3, 4), quat.FromVec4(vec.New4(1.0, 2, 3, 4)))

	assert.True(t, vec.All4(quat.IsNaN(quat.NaN[float64]())))
	assert.Equal(t, vec.Splat4(true), quat.IsInf(quat.PositiveInfinity[float32]()))
	assert.Equal(t, float32(math.Inf(-1)), quat.NegativeInfinity[float32]().W)
}

// TestIndexer covers At/Set bounds and the array views.
func TestIndexer(t *testing.T) {
	q := quat.New[int64](10, 20, 30, 40)
	require.Equal(t, 4, q.Len())
	for i, want := range []int64{10, 20, 30, 40} {
		got, err := q.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := q.At(4)
	require.ErrorIs(t, err, quat.ErrOutOfRange)
	_, err = q.At(-1)
	require.ErrorIs(t, err, scalar.ErrOutOfRange)

	require.NoError(t, q.Set(3, 99))
	require.Equal(t, int64(99), q.W)
	err = q.Set(5, 1)
	require.ErrorIs(t, err, quat.ErrOutOfRange)
	require.Equal(t, quat.New[int64](10, 20, 30, 99), q, "failed Set must not modify the value")

	require.Equal(t, [4]int64{10, 20, 30, 99}, q.Array())
	vals := q.Values()
	vals[0] = -1
	require.Equal(t, int64(10), q.X, "Values returns a copy")
	require.Equal(t, vec.New3[int64](10, 20, 30), q.XYZ())
	require.Equal(t, vec.New4[int64](10, 20, 30, 99), q.XYZW())
}

// TestValueSemantics ensures copies never alias.
func TestValueSemantics(t *testing.T) {
	a := quat.New(1.0, 2, 3, 4)
	b := a
	b.X = 100
	require.Equal(t, 1.0, a.X)
}

// TestStringAndParse covers the text format and its error classes.
func TestStringAndParse(t *testing.T) {
	q := quat.New(0.5, -1.25, 3, 1e-9)
	s := q.String()
	require.Equal(t, "0.5, -1.25, 3, 1e-09", s)

	back, err := quat.Parse[float64](s)
	require.NoError(t, err)
	require.True(t, back.Equal(q))

	x, err := quat.Parse[float64]("1, 0, 0, 0")
	require.NoError(t, err)
	require.Equal(t, quat.UnitX[float64](), x)

	i, err := quat.Parse[int32](" 1 ;2; 3;4 ", scalar.WithSeparator(";"))
	require.NoError(t, err)
	require.Equal(t, quat.New[int32](1, 2, 3, 4), i)
	require.Equal(t, "1;2;3;4", i.FormatWith(scalar.WithSeparator(";")))

	_, err = quat.Parse[float64]("1, 2, 3")
	require.ErrorIs(t, err, quat.ErrPartCount)
	require.ErrorIs(t, err, quat.ErrFormat)

	_, err = quat.Parse[int32]("1, 2, x, 4")
	require.ErrorIs(t, err, quat.ErrFormat)
	require.False(t, errors.Is(err, quat.ErrPartCount))

	_, err = quat.Parse[int64]("   ")
	require.ErrorIs(t, err, quat.ErrEmptyInput)
	require.ErrorIs(t, err, quat.ErrFormat)
}

// TestTryParse never errors and returns Zero on failure.
func TestTryParse(t *testing.T) {
	q, ok := quat.TryParse[float32]("1, 2, 3, 4")
	require.True(t, ok)
	require.Equal(t, quat.New[float32](1, 2, 3, 4), q)

	q, ok = quat.TryParse[float32]("1, 2, 3, four")
	require.False(t, ok)
	require.Equal(t, quat.Zero[float32](), q)

	b, ok := quat.TryParseBool("true, False, TRUE, 0")
	require.True(t, ok)
	require.Equal(t, quat.NewBool(true, false, true, false), b)

	b, ok = quat.TryParseBool("true, maybe, true, true")
	require.False(t, ok)
	require.Equal(t, quat.BoolZero(), b)
}

// TestFormatVerb renders fixed precision through the verb option.
func TestFormatVerb(t *testing.T) {
	q := quat.New(1.0/3, 0, -2, 1)
	require.Equal(t, "0.333, 0.000, -2.000, 1.000", q.FormatWith(scalar.WithVerb("%.3f")))
}

// TestLocaleRoundTrip renders with a locale and no verb, then parses the text
// back under the same locale.
func TestLocaleRoundTrip(t *testing.T) {
	q := quat.New(0.1234567891, 1234567.25, -3.5, 1e-9)
	for _, tag := range []language.Tag{language.German, language.English, language.French} {
		opt := scalar.WithLocale(tag)
		s := q.FormatWith(opt)
		got, err := quat.Parse[float64](s, opt)
		require.NoError(t, err, "%s: %q", tag, s)
		require.Equal(t, q, got, "%s: %q", tag, s)
	}
	require.Equal(t, "0,1234567891, 1.234.567,25, -3,5, 0,000000001",
		q.FormatWith(scalar.WithLocale(language.German)))
}
