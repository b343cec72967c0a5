package vec

import (
	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/scalar"
)

// New4 builds a Vec4 from its components.
func New4[T scalar.Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 builds a Vec4 with every component set to v.
func Splat4[T scalar.Scalar](v T) Vec4[T] {
	return Vec4[T]{X: v, Y: v, Z: v, W: v}
}

// New4From3 extends xyz with a w component.
func New4From3[T scalar.Scalar](xyz Vec3[T], w T) Vec4[T] {
	return Vec4[T]{X: xyz.X, Y: xyz.Y, Z: xyz.Z, W: w}
}

// New4From2 extends xy with z and w components.
func New4From2[T scalar.Scalar](xy Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{X: xy.X, Y: xy.Y, Z: z, W: w}
}

// Zero4 returns the all-zero (all-false) vector.
func Zero4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{} }

// Ones4 returns (1, 1, 1, 1).
func Ones4[T scalar.Number]() Vec4[T] { return Splat4[T](1) }

// UnitX4 returns (1, 0, 0, 0).
func UnitX4[T scalar.Number]() Vec4[T] { return Vec4[T]{X: 1} }

// UnitY4 returns (0, 1, 0, 0).
func UnitY4[T scalar.Number]() Vec4[T] { return Vec4[T]{Y: 1} }

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4[T scalar.Number]() Vec4[T] { return Vec4[T]{Z: 1} }

// UnitW4 returns (0, 0, 0, 1).
func UnitW4[T scalar.Number]() Vec4[T] { return Vec4[T]{W: 1} }

// Len returns the number of components.
func (v Vec4[T]) Len() int { return 4 }

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
// Returns ErrOutOfRange for any other index.
func (v Vec4[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	var zero T

	return zero, vecErrorf("Vec4.At", i, ErrOutOfRange)
}

// Set assigns component i. Returns ErrOutOfRange for an invalid index and
// leaves v unchanged.
func (v *Vec4[T]) Set(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	case 3:
		v.W = c
	default:
		return vecErrorf("Vec4.Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as an array.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// Values returns the components as a fresh slice.
func (v Vec4[T]) Values() []T { return []T{v.X, v.Y, v.Z, v.W} }

// String renders v as "x, y, z, w".
func (v Vec4[T]) String() string { return v.FormatWith() }

// FormatWith renders v with the given codec options.
func (v Vec4[T]) FormatWith(opts ...scalar.Option) string {
	a := v.Array()
	return scalar.FormatAll(a[:], scalar.NewOptions(opts...))
}

// Parse4 parses "x, y, z, w" (or the configured separator) into a Vec4.
func Parse4[T scalar.Scalar](s string, opts ...scalar.Option) (Vec4[T], error) {
	var a [4]T
	if err := scalar.ParseInto(a[:], s, scalar.NewOptions(opts...)); err != nil {
		return Vec4[T]{}, opErrorf("Parse4", err)
	}

	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// TryParse4 is Parse4 without an error: it returns the zero vector and false
// on any failure.
func TryParse4[T scalar.Scalar](s string, opts ...scalar.Option) (Vec4[T], bool) {
	v, err := Parse4[T](s, opts...)
	if err != nil {
		lvglm.Logger().Debug("vec: TryParse4 rejected input", "input", s, "err", err)
		return Vec4[T]{}, false
	}

	return v, true
}
