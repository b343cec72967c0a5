// SPDX-License-Identifier: MIT

// Package quat: conversions between rotation quaternions and matrices.
package quat

import (
	"math"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
)

// ToMat3 returns the rotation matrix of a normalized q (column-major).
func ToMat3[T scalar.Float](q Quat[T]) matrix.Mat3[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	return matrix.NewMat3(
		1-2*(y*y+z*z), 2*(x*y+w*z), 2*(x*z-w*y),
		2*(x*y-w*z), 1-2*(x*x+z*z), 2*(y*z+w*x),
		2*(x*z+w*y), 2*(y*z-w*x), 1-2*(y*y+x*x),
	)
}

// ToMat4 returns ToMat3(q) embedded in a homogeneous 4×4 matrix.
func ToMat4[T scalar.Float](q Quat[T]) matrix.Mat4[T] {
	return matrix.Mat4FromMat3(ToMat3(q))
}

// FromMat3 extracts the quaternion of a rotation matrix.
//
// Biggest-diagonal algorithm: of the four quantities 4w²-1, 4x²-1, 4y²-1 and
// 4z²-1 (all linear in the diagonal) the largest is selected, checking w, x,
// y, z in that order with strict '>', so the square root is taken of the
// best-conditioned value and the others follow from off-diagonal sums.
func FromMat3[T scalar.Float](m matrix.Mat3[T]) Quat[T] {
	fourXSquaredMinus1 := m.M00 - m.M11 - m.M22
	fourYSquaredMinus1 := m.M11 - m.M00 - m.M22
	fourZSquaredMinus1 := m.M22 - m.M00 - m.M11
	fourWSquaredMinus1 := m.M00 + m.M11 + m.M22

	biggestIndex := 0
	fourBiggestSquaredMinus1 := fourWSquaredMinus1
	if fourXSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourXSquaredMinus1
		biggestIndex = 1
	}
	if fourYSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourYSquaredMinus1
		biggestIndex = 2
	}
	if fourZSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourZSquaredMinus1
		biggestIndex = 3
	}

	biggestVal := T(math.Sqrt(float64(fourBiggestSquaredMinus1+1))) * 0.5
	mult := 0.25 / biggestVal

	switch biggestIndex {
	case 0:
		return Quat[T]{X: (m.M12 - m.M21) * mult, Y: (m.M20 - m.M02) * mult, Z: (m.M01 - m.M10) * mult, W: biggestVal}
	case 1:
		return Quat[T]{X: biggestVal, Y: (m.M01 + m.M10) * mult, Z: (m.M20 + m.M02) * mult, W: (m.M12 - m.M21) * mult}
	case 2:
		return Quat[T]{X: (m.M01 + m.M10) * mult, Y: biggestVal, Z: (m.M12 + m.M21) * mult, W: (m.M20 - m.M02) * mult}
	default:
		return Quat[T]{X: (m.M20 + m.M02) * mult, Y: (m.M12 + m.M21) * mult, Z: biggestVal, W: (m.M01 - m.M10) * mult}
	}
}

// FromMat4 extracts the quaternion of the upper-left 3×3 rotation block of m.
func FromMat4[T scalar.Float](m matrix.Mat4[T]) Quat[T] {
	return FromMat3(matrix.Mat3FromMat4(m))
}
