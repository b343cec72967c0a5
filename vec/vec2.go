package vec

import (
	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/scalar"
)

// New2 builds a Vec2 from its components.
func New2[T scalar.Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 builds a Vec2 with every component set to v.
func Splat2[T scalar.Scalar](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// Zero2 returns the all-zero (all-false) vector.
func Zero2[T scalar.Scalar]() Vec2[T] { return Vec2[T]{} }

// Ones2 returns (1, 1).
func Ones2[T scalar.Number]() Vec2[T] { return Splat2[T](1) }

// UnitX2 returns (1, 0).
func UnitX2[T scalar.Number]() Vec2[T] { return Vec2[T]{X: 1} }

// UnitY2 returns (0, 1).
func UnitY2[T scalar.Number]() Vec2[T] { return Vec2[T]{Y: 1} }

// Len returns the number of components.
func (v Vec2[T]) Len() int { return 2 }

// At returns component i (0=X, 1=Y).
// Returns ErrOutOfRange for any other index.
func (v Vec2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	var zero T

	return zero, vecErrorf("Vec2.At", i, ErrOutOfRange)
}

// Set assigns component i. Returns ErrOutOfRange for an invalid index and
// leaves v unchanged.
func (v *Vec2[T]) Set(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		return vecErrorf("Vec2.Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as an array.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Values returns the components as a fresh slice.
func (v Vec2[T]) Values() []T { return []T{v.X, v.Y} }

// String renders v as "x, y".
func (v Vec2[T]) String() string { return v.FormatWith() }

// FormatWith renders v with the given codec options.
func (v Vec2[T]) FormatWith(opts ...scalar.Option) string {
	a := v.Array()
	return scalar.FormatAll(a[:], scalar.NewOptions(opts...))
}

// Parse2 parses "x, y" (or the configured separator) into a Vec2.
func Parse2[T scalar.Scalar](s string, opts ...scalar.Option) (Vec2[T], error) {
	var a [2]T
	if err := scalar.ParseInto(a[:], s, scalar.NewOptions(opts...)); err != nil {
		return Vec2[T]{}, opErrorf("Parse2", err)
	}

	return Vec2[T]{X: a[0], Y: a[1]}, nil
}

// TryParse2 is Parse2 without an error: it returns the zero vector and false
// on any failure.
func TryParse2[T scalar.Scalar](s string, opts ...scalar.Option) (Vec2[T], bool) {
	v, err := Parse2[T](s, opts...)
	if err != nil {
		lvglm.Logger().Debug("vec: TryParse2 rejected input", "input", s, "err", err)
		return Vec2[T]{}, false
	}

	return v, true
}
