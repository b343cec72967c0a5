// SPDX-License-Identifier: MIT

// Package scalar: element constraints and small numeric helpers.
package scalar

import "math"

// Scalar is any element kind a vector may hold.
type Scalar interface {
	bool | int32 | uint32 | int64 | float32 | float64
}

// Number is a Scalar with arithmetic and ordering.
type Number interface {
	int32 | uint32 | int64 | float32 | float64
}

// Signed is a Number with a meaningful negation; quaternions are built over it.
type Signed interface {
	int32 | int64 | float32 | float64
}

// Integer is a Number with integer division (and its divide-by-zero panic).
type Integer interface {
	int32 | uint32 | int64
}

// Float is a Number following IEEE 754 semantics.
type Float interface {
	float32 | float64
}

// ToBool reports whether v is non-zero. NaN is non-zero.
func ToBool[T Number](v T) bool {
	return v != 0
}

// FromBool maps true to 1 and false to 0.
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}

	return 0
}

// IsZero reports whether v is the zero value of its kind.
func IsZero[T Scalar](v T) bool {
	var zero T
	return v == zero
}

// Epsilon returns the machine epsilon of T (the gap between 1 and the next
// representable value) as float64.
func Epsilon[T Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 0x1p-23
	}

	return 0x1p-52
}

// IsNaN reports whether v is an IEEE 754 "not-a-number" value.
func IsNaN[T Float](v T) bool {
	return v != v
}

// IsInf reports whether v is ±Inf.
func IsInf[T Float](v T) bool {
	return math.IsInf(float64(v), 0)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T Float](v T) bool {
	return !IsNaN(v) && !IsInf(v)
}

// IsDivZero reports whether dividing by d would trigger Go's integer
// divide-by-zero panic. Always false for floats.
func IsDivZero[T Number](d T) bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return false
	}

	return d == 0
}
