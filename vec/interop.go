// SPDX-License-Identifier: MIT

// Package vec: golang.org/x/image/math interop.
//
// f32/f64 vectors are plain arrays; conversions copy components in X, Y, Z, W
// order and cast through Go conversion rules.
package vec

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvglm/scalar"
)

// ToF32Vec2 converts v to a f32.Vec2.
func ToF32Vec2[T scalar.Number](v Vec2[T]) f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// FromF32Vec2 converts a f32.Vec2 to Vec2[T].
func FromF32Vec2[T scalar.Number](a f32.Vec2) Vec2[T] {
	return Vec2[T]{X: T(a[0]), Y: T(a[1])}
}

// ToF64Vec2 converts v to a f64.Vec2.
func ToF64Vec2[T scalar.Number](v Vec2[T]) f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

// FromF64Vec2 converts a f64.Vec2 to Vec2[T].
func FromF64Vec2[T scalar.Number](a f64.Vec2) Vec2[T] {
	return Vec2[T]{X: T(a[0]), Y: T(a[1])}
}

// ToF32Vec3 converts v to a f32.Vec3.
func ToF32Vec3[T scalar.Number](v Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromF32Vec3 converts a f32.Vec3 to Vec3[T].
func FromF32Vec3[T scalar.Number](a f32.Vec3) Vec3[T] {
	return Vec3[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2])}
}

// ToF64Vec3 converts v to a f64.Vec3.
func ToF64Vec3[T scalar.Number](v Vec3[T]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// FromF64Vec3 converts a f64.Vec3 to Vec3[T].
func FromF64Vec3[T scalar.Number](a f64.Vec3) Vec3[T] {
	return Vec3[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2])}
}

// ToF32Vec4 converts v to a f32.Vec4.
func ToF32Vec4[T scalar.Number](v Vec4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// FromF32Vec4 converts a f32.Vec4 to Vec4[T].
func FromF32Vec4[T scalar.Number](a f32.Vec4) Vec4[T] {
	return Vec4[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2]), W: T(a[3])}
}

// ToF64Vec4 converts v to a f64.Vec4.
func ToF64Vec4[T scalar.Number](v Vec4[T]) f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// FromF64Vec4 converts a f64.Vec4 to Vec4[T].
func FromF64Vec4[T scalar.Number](a f64.Vec4) Vec4[T] {
	return Vec4[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2]), W: T(a[3])}
}
