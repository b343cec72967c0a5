// SPDX-License-Identifier: MIT

// Package scalar: locale conventions derived from golang.org/x/text.
//
// x/text exposes rendering (message.Printer) but no number parser, so the
// decimal mark and group separator of a locale are recovered once by
// rendering a sample value and cached per tag.
package scalar

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sampleValue renders with both a group separator and a decimal mark in every
// Latin-digit locale: 1<g>234<g>567<d>5.
const sampleValue = 1234567.5

// numberMarks are the separators a locale uses when rendering numbers.
type numberMarks struct {
	decimal string // decimal mark, "." when unknown
	group   string // digit group separator, "" when none
}

var marksCache sync.Map // language.Tag.String() → numberMarks

// marksFor returns the number marks of tag.
func marksFor(tag language.Tag) numberMarks {
	key := tag.String()
	if v, ok := marksCache.Load(key); ok {
		return v.(numberMarks)
	}
	m := extractMarks(message.NewPrinter(tag).Sprintf("%.1f", sampleValue))
	marksCache.Store(key, m)

	return m
}

// extractMarks reads the marks out of a rendered sampleValue. Locales with
// non-Latin digits fall back to plain "." without grouping.
func extractMarks(out string) numberMarks {
	def := numberMarks{decimal: "."}
	if !strings.HasPrefix(out, "1") || !strings.HasSuffix(out, "5") {
		return def
	}
	i := strings.Index(out, "234")
	j := strings.LastIndex(out, "567")
	if i < 1 || j < 0 || j+3 > len(out)-1 {
		return def
	}
	m := numberMarks{group: out[1:i], decimal: out[j+3 : len(out)-1]}
	if m.decimal == "" {
		return def
	}

	return m
}

// delocalize rewrites a locale-rendered number into strconv syntax.
func delocalize(s string, tag language.Tag) string {
	m := marksFor(tag)
	if m.group != "" {
		s = strings.ReplaceAll(s, m.group, "")
	}
	if m.decimal != "." {
		s = strings.Replace(s, m.decimal, ".", 1)
	}

	return s
}

// localize renders v with the locale printer of tag. Without a verb, floats
// are written positionally by localizeFloat: the printer's %v switches to
// scientific notation with superscript exponents, which delocalize cannot
// read back.
func localize(tag language.Tag, verb string, v any) string {
	if verb == "" {
		switch x := v.(type) {
		case float32:
			return localizeFloat(tag, float64(x), 32)
		case float64:
			return localizeFloat(tag, x, 64)
		}
		verb = "%v"
	}

	return message.NewPrinter(tag).Sprintf(verb, v)
}

// localizeFloat writes the shortest positional form of f that parses back at
// the given bit size, with the decimal and group marks of tag.
func localizeFloat(tag language.Tag, f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}

	m := marksFor(tag)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(groupDigits(whole, m.group))
	if hasFrac {
		b.WriteString(m.decimal)
		b.WriteString(frac)
	}

	return b.String()
}

// groupDigits inserts sep between every three digits counted from the right.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
