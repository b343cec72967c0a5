package vec

import "github.com/katalvlaran/lvglm/scalar"

// Sentinel errors, shared with the scalar package so errors.Is matches
// regardless of which package a caller imported.
var (
	ErrFormat     = scalar.ErrFormat
	ErrPartCount  = scalar.ErrPartCount
	ErrEmptyInput = scalar.ErrEmptyInput
	ErrOutOfRange = scalar.ErrOutOfRange
)
