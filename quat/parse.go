package quat

import (
	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/scalar"
)

// Parse reads "x, y, z, w" (or the configured separator) into a quaternion.
//
// Errors:
//   - ErrEmptyInput for blank text,
//   - ErrPartCount when the text does not split into exactly 4 parts,
//   - ErrFormat when a component does not parse.
//
// All three match errors.Is(err, ErrFormat).
func Parse[T scalar.Signed](s string, opts ...scalar.Option) (Quat[T], error) {
	var a [4]T
	if err := scalar.ParseInto(a[:], s, scalar.NewOptions(opts...)); err != nil {
		return Quat[T]{}, quatErrorf("quat.Parse", err)
	}

	return Quat[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// TryParse is Parse without an error: it returns Zero and false on failure.
func TryParse[T scalar.Signed](s string, opts ...scalar.Option) (Quat[T], bool) {
	q, err := Parse[T](s, opts...)
	if err != nil {
		lvglm.Logger().Debug("quat: TryParse rejected input", "input", s, "err", err)
		return Zero[T](), false
	}

	return q, true
}

// ParseBool reads "x, y, z, w" booleans into a QBool.
func ParseBool(s string, opts ...scalar.Option) (QBool, error) {
	var a [4]bool
	if err := scalar.ParseInto(a[:], s, scalar.NewOptions(opts...)); err != nil {
		return QBool{}, quatErrorf("quat.ParseBool", err)
	}

	return QBool{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// TryParseBool is ParseBool without an error: it returns the all-false
// QBool and false on failure.
func TryParseBool(s string, opts ...scalar.Option) (QBool, bool) {
	b, err := ParseBool(s, opts...)
	if err != nil {
		lvglm.Logger().Debug("quat: TryParseBool rejected input", "input", s, "err", err)
		return QBool{}, false
	}

	return b, true
}
