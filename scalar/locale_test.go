package scalar

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// TestExtractMarks parses the marks out of typical sample renderings.
func TestExtractMarks(t *testing.T) {
	cases := []struct {
		out  string
		want numberMarks
	}{
		{"1,234,567.5", numberMarks{decimal: ".", group: ","}},
		{"1.234.567,5", numberMarks{decimal: ",", group: "."}},
		{"1 234 567,5", numberMarks{decimal: ",", group: " "}},
		{"1234567.5", numberMarks{decimal: "."}},
		{"١٬٢٣٤٬٥٦٧٫٥", numberMarks{decimal: "."}}, // non-Latin digits fall back
	}
	for _, c := range cases {
		require.Equal(t, c.want, extractMarks(c.out), c.out)
	}
}

// TestDelocalize_RoundTrip renders with a locale and parses it back.
func TestDelocalize_RoundTrip(t *testing.T) {
	for _, tag := range []language.Tag{language.English, language.German, language.French} {
		o := NewOptions(WithLocale(tag), WithVerb("%.2f"))
		s := Format(1234.25, o)
		got, err := Parse[float64](s, o)
		require.NoError(t, err, "%s: %q", tag, s)
		require.Equal(t, 1234.25, got, "%s: %q", tag, s)
	}
}

// TestFormat_GermanDecimalComma checks the culture-specific decimal mark.
func TestFormat_GermanDecimalComma(t *testing.T) {
	o := NewOptions(WithLocale(language.German), WithVerb("%.1f"))
	require.Equal(t, "1,5", Format(1.5, o))

	got, err := Parse[float32]("2,5", o)
	require.NoError(t, err)
	require.Equal(t, float32(2.5), got)
}

// TestFormat_LocaleRoundTripMagnitudes renders large and tiny values without
// a verb and parses them back unchanged.
func TestFormat_LocaleRoundTripMagnitudes(t *testing.T) {
	values := []float64{0.1234567891, 1234567.25, -3.5, 1e-9, 1e6, -2.5e21, 0, 42}
	for _, tag := range []language.Tag{language.English, language.German, language.French} {
		o := NewOptions(WithLocale(tag))
		for _, v := range values {
			s := Format(v, o)
			require.False(t, strings.ContainsAny(s, "eE×·⁰¹²³⁴⁵⁶⁷⁸⁹"), "%s: %q uses an exponent", tag, s)
			got, err := Parse[float64](s, o)
			require.NoError(t, err, "%s: %q", tag, s)
			require.Equal(t, v, got, "%s: %q", tag, s)

			v32 := float32(v)
			s = Format(v32, o)
			got32, err := Parse[float32](s, o)
			require.NoError(t, err, "%s: %q", tag, s)
			require.Equal(t, v32, got32, "%s: %q", tag, s)
		}
	}
}

// TestFormat_LocalePositional pins the rendering of the default verb.
func TestFormat_LocalePositional(t *testing.T) {
	en := NewOptions(WithLocale(language.English))
	de := NewOptions(WithLocale(language.German))

	require.Equal(t, "1,234,567.25", Format(1234567.25, en))
	require.Equal(t, "1.234.567,25", Format(1234567.25, de))
	require.Equal(t, "0,000000001", Format(1e-9, de))
	require.Equal(t, "-3,5", Format(-3.5, de))
	require.Equal(t, "1.000.000", Format(1e6, de))
	require.Equal(t, "NaN", Format(math.NaN(), de))
}

func TestGroupDigits(t *testing.T) {
	require.Equal(t, "1", groupDigits("1", "."))
	require.Equal(t, "123", groupDigits("123", "."))
	require.Equal(t, "1.234", groupDigits("1234", "."))
	require.Equal(t, "123.456", groupDigits("123456", "."))
	require.Equal(t, "1.234.567", groupDigits("1234567", "."))
	require.Equal(t, "1234567", groupDigits("1234567", ""))
}
