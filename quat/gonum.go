// SPDX-License-Identifier: MIT

// Package quat: interop with gonum.org/v1/gonum/num/quat and the
// transcendental functions built on it.
//
// gonum stores (Real, Imag, Jmag, Kmag); Real is our W and Imag/Jmag/Kmag are
// X/Y/Z. gonum computes in float64, so float32 results are rounded once on
// the way back.
package quat

import (
	gonumquat "gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvglm/scalar"
)

// ToGonum converts q to a gonum quaternion.
func ToGonum[T scalar.Signed](q Quat[T]) gonumquat.Number {
	return gonumquat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// FromGonum converts a gonum quaternion to Quat[T]. Integer kinds truncate
// toward zero.
func FromGonum[T scalar.Signed](n gonumquat.Number) Quat[T] {
	return Quat[T]{X: T(n.Imag), Y: T(n.Jmag), Z: T(n.Kmag), W: T(n.Real)}
}

// Exp returns the quaternion exponential e^q.
// For a pure quaternion (0, θ·n) with unit n the result is the rotation of
// 2θ about n.
func Exp[T scalar.Float](q Quat[T]) Quat[T] {
	return FromGonum[T](gonumquat.Exp(ToGonum(q)))
}

// Log returns the natural logarithm of q, the inverse of Exp on the
// principal branch.
func Log[T scalar.Float](q Quat[T]) Quat[T] {
	return FromGonum[T](gonumquat.Log(ToGonum(q)))
}

// Pow returns q raised to the real power p. For a unit q this scales the
// rotation angle by p.
func Pow[T scalar.Float](q Quat[T], p T) Quat[T] {
	return FromGonum[T](gonumquat.Pow(ToGonum(q), gonumquat.Number{Real: float64(p)}))
}
