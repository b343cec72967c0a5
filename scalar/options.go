// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - No global state: every Format/Parse call receives its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero Options behaves exactly like NewOptions() with no arguments.
package scalar

import (
	"strings"

	"golang.org/x/text/language"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator joins components in String and splits them in Parse.
	DefaultSeparator = ", "

	// DefaultVerb selects the shortest round-trip rendering when empty:
	// strconv 'g' with precision -1 for floats, base-10 for integers,
	// "true"/"false" for booleans.
	DefaultVerb = ""
)

// Option mutates Options during NewOptions.
type Option func(*Options)

// Options is the resolved codec configuration.
// Fields are unexported; build values with NewOptions.
type Options struct {
	separator string       // component separator; "" means DefaultSeparator
	verb      string       // fmt verb applied per component; "" means shortest round-trip
	locale    language.Tag // culture used for rendering/parsing numbers
	localized bool         // locale was set explicitly
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{separator: DefaultSeparator, verb: DefaultVerb}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSeparator sets the literal component separator.
// Panics on an empty separator: splitting on "" has no meaning.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic("scalar: WithSeparator(\"\"): separator must be non-empty")
	}

	return func(o *Options) { o.separator = sep }
}

// WithVerb sets the fmt verb used per component, e.g. "%.3f" or "%08d".
// Panics when verb does not start with '%'.
func WithVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") {
		panic("scalar: WithVerb(" + verb + "): verb must start with '%'")
	}

	return func(o *Options) { o.verb = verb }
}

// WithLocale renders numbers with the conventions of tag (decimal mark,
// digit grouping) and makes parsers accept that rendering. Without a verb,
// floats are written positionally so every value parses back unchanged.
func WithLocale(tag language.Tag) Option {
	return func(o *Options) {
		o.locale = tag
		o.localized = true
	}
}

// Separator returns the configured separator.
func (o Options) Separator() string {
	if o.separator == "" {
		return DefaultSeparator
	}

	return o.separator
}

// Verb returns the configured fmt verb ("" for shortest round-trip).
func (o Options) Verb() string { return o.verb }

// Locale returns the configured locale and whether one was set.
func (o Options) Locale() (language.Tag, bool) { return o.locale, o.localized }
