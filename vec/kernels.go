// SPDX-License-Identifier: MIT

// Package vec: elementwise kernels shared by the comparison, logic and
// conversion helpers. Each kernel touches every component exactly once in
// X, Y, Z, W order.
package vec

import "github.com/katalvlaran/lvglm/scalar"

// zip2 applies f to matching components of a and b.
func zip2[T, U scalar.Scalar](a, b Vec2[T], f func(T, T) U) Vec2[U] {
	return Vec2[U]{X: f(a.X, b.X), Y: f(a.Y, b.Y)}
}

// map2 applies f to every component of a.
func map2[T, U scalar.Scalar](a Vec2[T], f func(T) U) Vec2[U] {
	return Vec2[U]{X: f(a.X), Y: f(a.Y)}
}

// zip3 applies f to matching components of a and b.
func zip3[T, U scalar.Scalar](a, b Vec3[T], f func(T, T) U) Vec3[U] {
	return Vec3[U]{X: f(a.X, b.X), Y: f(a.Y, b.Y), Z: f(a.Z, b.Z)}
}

// map3 applies f to every component of a.
func map3[T, U scalar.Scalar](a Vec3[T], f func(T) U) Vec3[U] {
	return Vec3[U]{X: f(a.X), Y: f(a.Y), Z: f(a.Z)}
}

// zip4 applies f to matching components of a and b.
func zip4[T, U scalar.Scalar](a, b Vec4[T], f func(T, T) U) Vec4[U] {
	return Vec4[U]{X: f(a.X, b.X), Y: f(a.Y, b.Y), Z: f(a.Z, b.Z), W: f(a.W, b.W)}
}

// map4 applies f to every component of a.
func map4[T, U scalar.Scalar](a Vec4[T], f func(T) U) Vec4[U] {
	return Vec4[U]{X: f(a.X), Y: f(a.Y), Z: f(a.Z), W: f(a.W)}
}

func eq[T scalar.Scalar](a, b T) bool { return a == b }
func ne[T scalar.Scalar](a, b T) bool { return a != b }
func lt[T scalar.Number](a, b T) bool { return a < b }
func le[T scalar.Number](a, b T) bool { return a <= b }
func gt[T scalar.Number](a, b T) bool { return a > b }
func ge[T scalar.Number](a, b T) bool { return a >= b }
func and(a, b bool) bool { return a && b }
func or(a, b bool) bool { return a || b }
func xor(a, b bool) bool { return a != b }
func not(a bool) bool { return !a }
func cast[To, From scalar.Number](v From) To { return To(v) }
