// SPDX-License-Identifier: MIT

// Package quat: rotation semantics for float quaternions.
//
// Every function here is constrained to scalar.Float. Transcendental
// functions evaluate in float64 and convert back to T; products and sums
// stay in T so float32 results match float32 arithmetic.
package quat

import (
	"math"

	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Length returns the Euclidean norm of q.
func Length[T scalar.Float](q Quat[T]) T {
	return T(math.Sqrt(float64(q.LengthSqr())))
}

// Normalized returns q / Length(q). The zero quaternion yields NaN
// components; use NormalizedSafe to guard against it.
func Normalized[T scalar.Float](q Quat[T]) Quat[T] {
	return q.Div(Length(q))
}

// NormalizedSafe is Normalized, returning Identity when q is exactly Zero.
func NormalizedSafe[T scalar.Float](q Quat[T]) Quat[T] {
	if q == Zero[T]() {
		return Identity[T]()
	}

	return Normalized(q)
}

// Inverse returns Conjugate(q) / LengthSqr(q). The zero quaternion is not
// special-cased and yields NaN components.
func Inverse[T scalar.Float](q Quat[T]) Quat[T] {
	return q.Conjugate().Div(q.LengthSqr())
}

// Angle returns the rotation angle 2·acos(w) in radians.
// q must be normalized; no normalization happens here.
func Angle[T scalar.Float](q Quat[T]) T {
	return T(math.Acos(float64(q.W)) * 2)
}

// Axis returns the rotation axis (x, y, z)/sqrt(1 - w²).
// When 1 - w² is negative (w drifted past ±1) it returns UnitZ instead of NaN.
// For an exact identity the result is NaN, as the axis is undefined.
func Axis[T scalar.Float](q Quat[T]) vec.Vec3[T] {
	s1 := 1 - q.W*q.W
	if s1 < 0 {
		lvglm.Logger().Debug("quat: Axis fell back to UnitZ", "w", float64(q.W))
		return vec.UnitZ3[T]()
	}
	s2 := T(1 / math.Sqrt(float64(s1)))

	return vec.Vec3[T]{X: q.X * s2, Y: q.Y * s2, Z: q.Z * s2}
}

// Yaw returns the rotation about the Y axis, asin(-2(xz - wy)).
func Yaw[T scalar.Float](q Quat[T]) T {
	return T(math.Asin(float64(-2 * (q.X*q.Z - q.W*q.Y))))
}

// Pitch returns the rotation about the X axis, atan2(2(yz + wx), w² - x² - y² + z²).
func Pitch[T scalar.Float](q Quat[T]) T {
	return T(math.Atan2(float64(2*(q.Y*q.Z+q.W*q.X)), float64(q.W*q.W-q.X*q.X-q.Y*q.Y+q.Z*q.Z)))
}

// Roll returns the rotation about the Z axis, atan2(2(xy + wz), w² + x² - y² - z²).
func Roll[T scalar.Float](q Quat[T]) T {
	return T(math.Atan2(float64(2*(q.X*q.Y+q.W*q.Z)), float64(q.W*q.W+q.X*q.X-q.Y*q.Y-q.Z*q.Z)))
}

// EulerAngles returns (Pitch, Yaw, Roll) in radians.
func EulerAngles[T scalar.Float](q Quat[T]) vec.Vec3[T] {
	return vec.New3(Pitch(q), Yaw(q), Roll(q))
}

// FromAxisAngle returns the rotation of angle radians about axis.
// axis is used as given; pass a unit vector to get a unit quaternion.
func FromAxisAngle[T scalar.Float](angle T, axis vec.Vec3[T]) Quat[T] {
	half := float64(angle) * 0.5
	s := T(math.Sin(half))
	c := T(math.Cos(half))

	return Quat[T]{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// FromEulerAngles builds a rotation from (pitch, yaw, roll) radians, the
// inverse of EulerAngles away from gimbal lock.
func FromEulerAngles[T scalar.Float](angles vec.Vec3[T]) Quat[T] {
	cx, sx := T(math.Cos(float64(angles.X)/2)), T(math.Sin(float64(angles.X)/2))
	cy, sy := T(math.Cos(float64(angles.Y)/2)), T(math.Sin(float64(angles.Y)/2))
	cz, sz := T(math.Cos(float64(angles.Z)/2)), T(math.Sin(float64(angles.Z)/2))

	return Quat[T]{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// FromToVectors returns the shortest rotation taking unit vector u onto unit
// vector v. Opposite vectors have no unique answer and yield NaN.
func FromToVectors[T scalar.Float](u, v vec.Vec3[T]) Quat[T] {
	w := vec.Cross(u, v)
	dot := vec.Dot3(u, v)

	return Normalized(Quat[T]{X: w.X, Y: w.Y, Z: w.Z, W: 1 + dot})
}

// Rotated returns q·FromAxisAngle(angle, axis): the extra rotation is applied
// first, in q's local frame.
func Rotated[T scalar.Float](q Quat[T], angle T, axis vec.Vec3[T]) Quat[T] {
	return q.Mul(FromAxisAngle(angle, axis))
}

// InverseRotateVec3 rotates v by the inverse of q (v·q in operator notation).
func InverseRotateVec3[T scalar.Float](v vec.Vec3[T], q Quat[T]) vec.Vec3[T] {
	return RotateVec3(Inverse(q), v)
}

// InverseRotateVec4 rotates the xyz part of v by the inverse of q and keeps v.W.
func InverseRotateVec4[T scalar.Float](v vec.Vec4[T], q Quat[T]) vec.Vec4[T] {
	return RotateVec4(Inverse(q), v)
}
