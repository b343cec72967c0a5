// SPDX-License-Identifier: MIT

// Package scalar: text codec for single components and component lists.
//
// Text layout: "{c0}{sep}{c1}{sep}...{cN-1}" with sep = Options.Separator().
// Parsing splits on the literal separator, requires exactly N parts and trims
// each part before the scalar parser runs.
package scalar

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	opParse = "Parse"
	opSplit = "Split"
)

// Parse converts one trimmed component into T.
//
// Booleans accept everything strconv.ParseBool does (1, t, T, TRUE, true,
// True, ...). Integers are base-10 and range-checked against T's width.
// When o carries a locale, its group separators are dropped and its decimal
// mark is mapped to '.' before parsing numbers.
//
// Errors: ErrEmptyInput for blank text, ErrFormat (joined with the strconv
// cause) for anything else that does not parse.
func Parse[T Scalar](s string, o Options) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, scalarErrorf(opParse, ErrEmptyInput)
	}
	if tag, ok := o.Locale(); ok {
		if _, isBool := any(zero).(bool); !isBool {
			s = delocalize(s, tag)
		}
	}

	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case bool:
		v, err = strconv.ParseBool(s)
	case int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		v = int32(n)
	case uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		v = uint32(n)
	case int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case float64:
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return zero, fmt.Errorf("%s(%q): %w: %w", opParse, s, ErrFormat, err)
	}

	return v.(T), nil
}

// Format renders one component.
//
// Without a verb the output is the shortest text that parses back to the same
// value; with a locale it is also positional (never scientific) and carries
// the locale's decimal and group marks. A verb is applied through fmt (or the
// locale printer when a locale is set).
func Format[T Scalar](v T, o Options) string {
	if tag, ok := o.Locale(); ok {
		return localize(tag, o.Verb(), v)
	}
	if verb := o.Verb(); verb != "" {
		return fmt.Sprintf(verb, v)
	}

	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return fmt.Sprint(v)
}

// Split cuts s on the configured separator and requires exactly n parts.
// Parts are returned untrimmed.
func Split(s string, n int, o Options) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, scalarErrorf(opSplit, ErrEmptyInput)
	}
	parts := strings.Split(s, o.Separator())
	if len(parts) != n {
		return nil, fmt.Errorf("%s: got %d parts, want %d: %w", opSplit, len(parts), n, ErrPartCount)
	}

	return parts, nil
}

// ParseInto parses len(dst) components from s into dst.
// On error dst may be partially written; callers copy into a value only on success.
func ParseInto[T Scalar](dst []T, s string, o Options) error {
	parts, err := Split(s, len(dst), o)
	if err != nil {
		return err
	}
	for i, p := range parts {
		v, err := Parse[T](p, o)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		dst[i] = v
	}

	return nil
}

// FormatAll renders vals joined by the configured separator.
func FormatAll[T Scalar](vals []T, o Options) string {
	var b strings.Builder
	sep := o.Separator()
	for i, v := range vals {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(Format(v, o))
	}

	return b.String()
}
