// SPDX-License-Identifier: MIT

// Package quat: componentwise arithmetic, the Hamilton product and
// elementwise comparisons.
//
// Division policy:
//   - Div/DivElem use Go's "/" unchanged: IEEE 754 for floats, a runtime
//     panic for an integer zero divisor.
//   - SafeDiv is the single checked path; it reports ErrDivideByZero instead.
package quat

import (
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Add returns q + o componentwise.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z, W: q.W + o.W}
}

// Sub returns q - o componentwise.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{X: q.X - o.X, Y: q.Y - o.Y, Z: q.Z - o.Z, W: q.W - o.W}
}

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Scale returns q * s componentwise.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Div returns q / s componentwise. Panics on an integer zero divisor.
func (q Quat[T]) Div(s T) Quat[T] {
	return Quat[T]{X: q.X / s, Y: q.Y / s, Z: q.Z / s, W: q.W / s}
}

// SafeDiv is Div returning ErrDivideByZero instead of panicking when s is an
// integer zero. Float divisors are never rejected.
func (q Quat[T]) SafeDiv(s T) (Quat[T], error) {
	if scalar.IsDivZero(s) {
		return Quat[T]{}, quatErrorf("Quat.SafeDiv", ErrDivideByZero)
	}

	return q.Div(s), nil
}

// DivElem returns q / o componentwise. Panics on an integer zero component.
func (q Quat[T]) DivElem(o Quat[T]) Quat[T] {
	return Quat[T]{X: q.X / o.X, Y: q.Y / o.Y, Z: q.Z / o.Z, W: q.W / o.W}
}

// Mul returns the Hamilton product q·o. The product is not commutative:
// q.Mul(o) applies o first, then q, when both are rotations.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Dot returns the 4D dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSqr returns the squared Euclidean norm.
func (q Quat[T]) LengthSqr() T { return q.Dot(q) }

// Conjugate returns (-x, -y, -z, w).
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Equal reports strict componentwise equality; NaN is never equal.
func (q Quat[T]) Equal(o Quat[T]) bool { return q == o }

// EqualElem returns q == o per component.
func (q Quat[T]) EqualElem(o Quat[T]) vec.Bool4 { return vec.Equal4(q.XYZW(), o.XYZW()) }

// NotEqualElem returns q != o per component.
func (q Quat[T]) NotEqualElem(o Quat[T]) vec.Bool4 { return vec.NotEqual4(q.XYZW(), o.XYZW()) }

// Less returns q < o per component.
func (q Quat[T]) Less(o Quat[T]) vec.Bool4 { return vec.Less4(q.XYZW(), o.XYZW()) }

// LessEqual returns q <= o per component.
func (q Quat[T]) LessEqual(o Quat[T]) vec.Bool4 { return vec.LessEqual4(q.XYZW(), o.XYZW()) }

// Greater returns q > o per component.
func (q Quat[T]) Greater(o Quat[T]) vec.Bool4 { return vec.Greater4(q.XYZW(), o.XYZW()) }

// GreaterEqual returns q >= o per component.
func (q Quat[T]) GreaterEqual(o Quat[T]) vec.Bool4 { return vec.GreaterEqual4(q.XYZW(), o.XYZW()) }

// IsNaN reports per component whether it is NaN.
func IsNaN[T scalar.Float](q Quat[T]) vec.Bool4 {
	return vec.New4(scalar.IsNaN(q.X), scalar.IsNaN(q.Y), scalar.IsNaN(q.Z), scalar.IsNaN(q.W))
}

// IsInf reports per component whether it is ±Inf.
func IsInf[T scalar.Float](q Quat[T]) vec.Bool4 {
	return vec.New4(scalar.IsInf(q.X), scalar.IsInf(q.Y), scalar.IsInf(q.Z), scalar.IsInf(q.W))
}

// IsFinite reports per component whether it is neither NaN nor ±Inf.
func IsFinite[T scalar.Float](q Quat[T]) vec.Bool4 {
	return vec.New4(scalar.IsFinite(q.X), scalar.IsFinite(q.Y), scalar.IsFinite(q.Z), scalar.IsFinite(q.W))
}

// RotateVec3 rotates v by q using v + 2·(w·(u×v) + u×(u×v)) with u the vector
// part of q. q is expected to be normalized.
func RotateVec3[T scalar.Signed](q Quat[T], v vec.Vec3[T]) vec.Vec3[T] {
	u := q.XYZ()
	uv := vec.Cross(u, v)
	uuv := vec.Cross(u, uv)

	return vec.Add3(v, vec.Scale3(vec.Add3(vec.Scale3(uv, q.W), uuv), 2))
}

// RotateVec4 rotates the xyz part of v by q and keeps v.W unchanged.
func RotateVec4[T scalar.Signed](q Quat[T], v vec.Vec4[T]) vec.Vec4[T] {
	return vec.New4From3(RotateVec3(q, v.XYZ()), v.W)
}
