// SPDX-License-Identifier: MIT

// Package quat: the generic quaternion value type, constructors and accessors.
package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Quat is a quaternion (x, y, z, w) with vector part (x, y, z) and scalar
// part w. The zero value is the zero quaternion, not Identity.
type Quat[T scalar.Signed] struct {
	X, Y, Z, W T
}

// Named instantiations.
type (
	QInt    = Quat[int32]
	QLong   = Quat[int64]
	QFloat  = Quat[float32]
	QDouble = Quat[float64]
)

// New builds a quaternion from its components.
func New[T scalar.Signed](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// Splat builds a quaternion with every component set to v.
func Splat[T scalar.Signed](v T) Quat[T] {
	return Quat[T]{X: v, Y: v, Z: v, W: v}
}

// FromVec3 builds (v.X, v.Y, v.Z, w).
func FromVec3[T scalar.Signed](v vec.Vec3[T], w T) Quat[T] {
	return Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// FromVec4 reinterprets a 4-vector as a quaternion.
func FromVec4[T scalar.Signed](v vec.Vec4[T]) Quat[T] {
	return Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Zero returns (0, 0, 0, 0).
func Zero[T scalar.Signed]() Quat[T] { return Quat[T]{} }

// Ones returns (1, 1, 1, 1).
func Ones[T scalar.Signed]() Quat[T] { return Splat[T](1) }

// Identity returns (0, 0, 0, 1), the neutral element of Mul.
func Identity[T scalar.Signed]() Quat[T] { return Quat[T]{W: 1} }

// UnitX returns (1, 0, 0, 0).
func UnitX[T scalar.Signed]() Quat[T] { return Quat[T]{X: 1} }

// UnitY returns (0, 1, 0, 0).
func UnitY[T scalar.Signed]() Quat[T] { return Quat[T]{Y: 1} }

// UnitZ returns (0, 0, 1, 0).
func UnitZ[T scalar.Signed]() Quat[T] { return Quat[T]{Z: 1} }

// UnitW returns (0, 0, 0, 1).
func UnitW[T scalar.Signed]() Quat[T] { return Quat[T]{W: 1} }

// NaN returns a quaternion with every component NaN.
func NaN[T scalar.Float]() Quat[T] { return Splat(T(math.NaN())) }

// PositiveInfinity returns a quaternion with every component +Inf.
func PositiveInfinity[T scalar.Float]() Quat[T] { return Splat(T(math.Inf(1))) }

// NegativeInfinity returns a quaternion with every component -Inf.
func NegativeInfinity[T scalar.Float]() Quat[T] { return Splat(T(math.Inf(-1))) }

// Len returns the number of components.
func (q Quat[T]) Len() int { return 4 }

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
// Returns ErrOutOfRange for any other index.
func (q Quat[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return q.X, nil
	case 1:
		return q.Y, nil
	case 2:
		return q.Z, nil
	case 3:
		return q.W, nil
	}
	var zero T

	return zero, fmt.Errorf("Quat.At(%d): %w", i, ErrOutOfRange)
}

// Set assigns component i; q is unchanged on error.
func (q *Quat[T]) Set(i int, v T) error {
	switch i {
	case 0:
		q.X = v
	case 1:
		q.Y = v
	case 2:
		q.Z = v
	case 3:
		q.W = v
	default:
		return fmt.Errorf("Quat.Set(%d): %w", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as an array.
func (q Quat[T]) Array() [4]T { return [4]T{q.X, q.Y, q.Z, q.W} }

// Values returns the components as a fresh slice.
func (q Quat[T]) Values() []T { return []T{q.X, q.Y, q.Z, q.W} }

// XYZ returns the vector part.
func (q Quat[T]) XYZ() vec.Vec3[T] { return vec.Vec3[T]{X: q.X, Y: q.Y, Z: q.Z} }

// XYZW returns all four components as a vector.
func (q Quat[T]) XYZW() vec.Vec4[T] { return vec.Vec4[T]{X: q.X, Y: q.Y, Z: q.Z, W: q.W} }

// String renders q as "x, y, z, w".
func (q Quat[T]) String() string { return q.FormatWith() }

// FormatWith renders q with the given codec options.
func (q Quat[T]) FormatWith(opts ...scalar.Option) string {
	a := q.Array()
	return scalar.FormatAll(a[:], scalar.NewOptions(opts...))
}
