package quat

import (
	"fmt"

	"github.com/katalvlaran/lvglm/scalar"
)

// Sentinel errors, shared with the scalar package.
var (
	ErrFormat       = scalar.ErrFormat
	ErrPartCount    = scalar.ErrPartCount
	ErrEmptyInput   = scalar.ErrEmptyInput
	ErrOutOfRange   = scalar.ErrOutOfRange
	ErrDivideByZero = scalar.ErrDivideByZero
)

// quatErrorf wraps err with an operation tag.
func quatErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
