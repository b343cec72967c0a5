// SPDX-License-Identifier: MIT

// Package matrix - golang.org/x/image/math interop.
//
// x/image matrices are row-major arrays: element (row r, col c) lives at
// index N*r + c. Mat3/Mat4 are column-major, so every conversion transposes
// the storage order while keeping the mathematical matrix unchanged.
package matrix

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvglm/scalar"
)

// ToF64Mat3 converts m to a row-major f64.Mat3.
func ToF64Mat3[T scalar.Float](m Mat3[T]) f64.Mat3 {
	var out f64.Mat3
	a := m.array()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = float64(a[c*3+r])
		}
	}

	return out
}

// ToF32Mat3 converts m to a row-major f32.Mat3.
func ToF32Mat3[T scalar.Float](m Mat3[T]) f32.Mat3 {
	var out f32.Mat3
	a := m.array()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = float32(a[c*3+r])
		}
	}

	return out
}

// FromF64Mat3 converts a row-major f64.Mat3 to Mat3[T].
func FromF64Mat3[T scalar.Float](m f64.Mat3) Mat3[T] {
	var a [9]T
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			a[c*3+r] = T(m[3*r+c])
		}
	}

	return mat3FromArray(a)
}

// FromF32Mat3 converts a row-major f32.Mat3 to Mat3[T].
func FromF32Mat3[T scalar.Float](m f32.Mat3) Mat3[T] {
	var a [9]T
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			a[c*3+r] = T(m[3*r+c])
		}
	}

	return mat3FromArray(a)
}

// ToF64Mat4 converts m to a row-major f64.Mat4.
func ToF64Mat4[T scalar.Float](m Mat4[T]) f64.Mat4 {
	var out f64.Mat4
	a := m.array()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*r+c] = float64(a[c*4+r])
		}
	}

	return out
}

// ToF32Mat4 converts m to a row-major f32.Mat4.
func ToF32Mat4[T scalar.Float](m Mat4[T]) f32.Mat4 {
	var out f32.Mat4
	a := m.array()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*r+c] = float32(a[c*4+r])
		}
	}

	return out
}

// FromF64Mat4 converts a row-major f64.Mat4 to Mat4[T].
func FromF64Mat4[T scalar.Float](m f64.Mat4) Mat4[T] {
	var a [16]T
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a[c*4+r] = T(m[4*r+c])
		}
	}

	return mat4FromArray(a)
}

// FromF32Mat4 converts a row-major f32.Mat4 to Mat4[T].
func FromF32Mat4[T scalar.Float](m f32.Mat4) Mat4[T] {
	var a [16]T
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a[c*4+r] = T(m[4*r+c])
		}
	}

	return mat4FromArray(a)
}
