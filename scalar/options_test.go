package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvglm/scalar"
)

// TestNewOptions_Defaults pins the documented defaults.
func TestNewOptions_Defaults(t *testing.T) {
	o := scalar.NewOptions()
	require.Equal(t, scalar.DefaultSeparator, o.Separator())
	require.Equal(t, scalar.DefaultVerb, o.Verb())
	_, ok := o.Locale()
	require.False(t, ok)

	// The zero Options must behave like the defaults.
	var zero scalar.Options
	require.Equal(t, scalar.DefaultSeparator, zero.Separator())
}

// TestOptions_Apply checks that every WithX is honoured and nil options are skipped.
func TestOptions_Apply(t *testing.T) {
	o := scalar.NewOptions(nil, scalar.WithSeparator(" | "), scalar.WithVerb("%.1f"), scalar.WithLocale(language.German))
	require.Equal(t, " | ", o.Separator())
	require.Equal(t, "%.1f", o.Verb())
	tag, ok := o.Locale()
	require.True(t, ok)
	require.Equal(t, language.German, tag)
}

// TestOptions_PanicOnNonsense verifies programmer errors panic at construction.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { scalar.WithSeparator("") })
	require.Panics(t, func() { scalar.WithVerb(".3f") })
}
