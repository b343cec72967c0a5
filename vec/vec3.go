package vec

import (
	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/scalar"
)

// New3 builds a Vec3 from its components.
func New3[T scalar.Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 builds a Vec3 with every component set to v.
func Splat3[T scalar.Scalar](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

// New3From2 extends xy with a z component.
func New3From2[T scalar.Scalar](xy Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: xy.X, Y: xy.Y, Z: z}
}

// Zero3 returns the all-zero (all-false) vector.
func Zero3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{} }

// Ones3 returns (1, 1, 1).
func Ones3[T scalar.Number]() Vec3[T] { return Splat3[T](1) }

// UnitX3 returns (1, 0, 0).
func UnitX3[T scalar.Number]() Vec3[T] { return Vec3[T]{X: 1} }

// UnitY3 returns (0, 1, 0).
func UnitY3[T scalar.Number]() Vec3[T] { return Vec3[T]{Y: 1} }

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T scalar.Number]() Vec3[T] { return Vec3[T]{Z: 1} }

// Len returns the number of components.
func (v Vec3[T]) Len() int { return 3 }

// At returns component i (0=X, 1=Y, 2=Z).
// Returns ErrOutOfRange for any other index.
func (v Vec3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	var zero T

	return zero, vecErrorf("Vec3.At", i, ErrOutOfRange)
}

// Set assigns component i. Returns ErrOutOfRange for an invalid index and
// leaves v unchanged.
func (v *Vec3[T]) Set(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		return vecErrorf("Vec3.Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as an array.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Values returns the components as a fresh slice.
func (v Vec3[T]) Values() []T { return []T{v.X, v.Y, v.Z} }

// String renders v as "x, y, z".
func (v Vec3[T]) String() string { return v.FormatWith() }

// FormatWith renders v with the given codec options.
func (v Vec3[T]) FormatWith(opts ...scalar.Option) string {
	a := v.Array()
	return scalar.FormatAll(a[:], scalar.NewOptions(opts...))
}

// Parse3 parses "x, y, z" (or the configured separator) into a Vec3.
func Parse3[T scalar.Scalar](s string, opts ...scalar.Option) (Vec3[T], error) {
	var a [3]T
	if err := scalar.ParseInto(a[:], s, scalar.NewOptions(opts...)); err != nil {
		return Vec3[T]{}, opErrorf("Parse3", err)
	}

	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}, nil
}

// TryParse3 is Parse3 without an error: it returns the zero vector and false
// on any failure.
func TryParse3[T scalar.Scalar](s string, opts ...scalar.Option) (Vec3[T], bool) {
	v, err := Parse3[T](s, opts...)
	if err != nil {
		lvglm.Logger().Debug("vec: TryParse3 rejected input", "input", s, "err", err)
		return Vec3[T]{}, false
	}

	return v, true
}
