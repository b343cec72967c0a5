// SPDX-License-Identifier: MIT

// Package quat: conversions between quaternion kinds.
//
// Lossless (widening) conversions have named constructors; everything else
// goes through Convert, ToQBool or FromQBool and may truncate.
package quat

import (
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Convert casts every component with Go conversion rules: floats truncate
// toward zero when converted to an integer kind, out-of-range values are
// implementation-defined.
func Convert[To, From scalar.Signed](q Quat[From]) Quat[To] {
	return FromVec4(vec.Convert4[To](q.XYZW()))
}

// ToQBool maps every component to (component != 0). NaN maps to true.
func ToQBool[T scalar.Signed](q Quat[T]) QBool {
	return BoolFromVec4(vec.ToBool4(q.XYZW()))
}

// FromQBool maps true to 1 and false to 0.
func FromQBool[T scalar.Signed](b QBool) Quat[T] {
	return FromVec4(vec.FromBool4[T](b.XYZW()))
}

// QIntToQLong widens a QInt losslessly.
func QIntToQLong(q QInt) QLong { return Convert[int64](q) }

// QIntToQFloat widens a QInt; components beyond ±2^24 round to nearest.
func QIntToQFloat(q QInt) QFloat { return Convert[float32](q) }

// QIntToQDouble widens a QInt losslessly.
func QIntToQDouble(q QInt) QDouble { return Convert[float64](q) }

// QLongToQDouble widens a QLong; components beyond ±2^53 round to nearest.
func QLongToQDouble(q QLong) QDouble { return Convert[float64](q) }

// QFloatToQDouble widens a QFloat losslessly.
func QFloatToQDouble(q QFloat) QDouble { return Convert[float64](q) }
