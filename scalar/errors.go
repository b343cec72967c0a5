// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set shared by vec, matrix and quat.
// Value-type packages re-export these variables so callers can match with
// errors.Is against whichever package they imported.

package scalar

import (
	"errors"
	"fmt"
)

// NOTE ON WRAPPING
// ----------------
// Every message is prefixed with "lvglm: ...". Call sites attach context with
// fmt.Errorf("<op>: %w", ErrX); callers still match via errors.Is.
// ErrPartCount and ErrEmptyInput wrap ErrFormat, so a single
// errors.Is(err, ErrFormat) check catches every malformed-text failure.

var (
	// ErrFormat is returned when text cannot be parsed into a value.
	ErrFormat = errors.New("lvglm: invalid format")

	// ErrPartCount is returned when text splits into the wrong number of components.
	ErrPartCount = fmt.Errorf("lvglm: wrong component count: %w", ErrFormat)

	// ErrEmptyInput is returned when the text to parse is empty or blank.
	ErrEmptyInput = fmt.Errorf("lvglm: empty input: %w", ErrFormat)

	// ErrOutOfRange indicates a component index outside [0, N).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("lvglm: index out of range")

	// ErrDivideByZero is returned by the checked division helpers when an
	// integer divisor is zero.
	ErrDivideByZero = errors.New("lvglm: integer division by zero")
)

// scalarErrorf wraps err with an operation tag.
func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
