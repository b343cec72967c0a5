// SPDX-License-Identifier: MIT

// Package quat: QBool, the boolean quaternion.
//
// QBool carries four independent flags, typically the result of an
// elementwise comparison. It has no Hamilton product and no rotation
// semantics; only boolean logic is defined.
package quat

import (
	"fmt"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// QBool is a quaternion of booleans. The zero value is all-false.
type QBool struct {
	X, Y, Z, W bool
}

// NewBool builds a QBool from its components.
func NewBool(x, y, z, w bool) QBool { return QBool{X: x, Y: y, Z: z, W: w} }

// SplatBool builds a QBool with every component set to v.
func SplatBool(v bool) QBool { return QBool{X: v, Y: v, Z: v, W: v} }

// BoolZero returns the all-false QBool.
func BoolZero() QBool { return QBool{} }

// BoolOnes returns the all-true QBool.
func BoolOnes() QBool { return SplatBool(true) }

// BoolFromVec4 reinterprets a boolean 4-vector as a QBool.
func BoolFromVec4(v vec.Bool4) QBool { return QBool{X: v.X, Y: v.Y, Z: v.Z, W: v.W} }

// Not returns the componentwise negation.
func (b QBool) Not() QBool { return BoolFromVec4(vec.Not4(b.XYZW())) }

// And returns b && o componentwise.
func (b QBool) And(o QBool) QBool { return BoolFromVec4(vec.And4(b.XYZW(), o.XYZW())) }

// Or returns b || o componentwise.
func (b QBool) Or(o QBool) QBool { return BoolFromVec4(vec.Or4(b.XYZW(), o.XYZW())) }

// Xor returns b != o componentwise.
func (b QBool) Xor(o QBool) QBool { return BoolFromVec4(vec.Xor4(b.XYZW(), o.XYZW())) }

// Nand returns !(b && o) componentwise.
func (b QBool) Nand(o QBool) QBool { return b.And(o).Not() }

// Nor returns !(b || o) componentwise.
func (b QBool) Nor(o QBool) QBool { return b.Or(o).Not() }

// All reports whether every component is true.
func (b QBool) All() bool { return vec.All4(b.XYZW()) }

// Any reports whether at least one component is true.
func (b QBool) Any() bool { return vec.Any4(b.XYZW()) }

// Equal reports whether all four components match.
func (b QBool) Equal(o QBool) bool { return b == o }

// EqualElem compares componentwise.
func (b QBool) EqualElem(o QBool) vec.Bool4 { return vec.Equal4(b.XYZW(), o.XYZW()) }

// NotEqualElem compares componentwise.
func (b QBool) NotEqualElem(o QBool) vec.Bool4 { return vec.NotEqual4(b.XYZW(), o.XYZW()) }

// Len returns the number of components.
func (b QBool) Len() int { return 4 }

// At returns component i, or ErrOutOfRange outside [0,4).
func (b QBool) At(i int) (bool, error) {
	if i < 0 || i >= 4 {
		return false, fmt.Errorf("QBool.At(%d): %w", i, ErrOutOfRange)
	}

	return b.Array()[i], nil
}

// Set assigns component i; b is unchanged on error.
func (b *QBool) Set(i int, v bool) error {
	switch i {
	case 0:
		b.X = v
	case 1:
		b.Y = v
	case 2:
		b.Z = v
	case 3:
		b.W = v
	default:
		return fmt.Errorf("QBool.Set(%d): %w", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as an array.
func (b QBool) Array() [4]bool { return [4]bool{b.X, b.Y, b.Z, b.W} }

// Values returns the components as a fresh slice.
func (b QBool) Values() []bool { return []bool{b.X, b.Y, b.Z, b.W} }

// XYZ returns the first three components.
func (b QBool) XYZ() vec.Bool3 { return vec.Bool3{X: b.X, Y: b.Y, Z: b.Z} }

// XYZW returns all four components as a vector.
func (b QBool) XYZW() vec.Bool4 { return vec.Bool4{X: b.X, Y: b.Y, Z: b.Z, W: b.W} }

// String renders b as "x, y, z, w".
func (b QBool) String() string { return b.FormatWith() }

// FormatWith renders b with the given codec options.
func (b QBool) FormatWith(opts ...scalar.Option) string {
	a := b.Array()
	return scalar.FormatAll(a[:], scalar.NewOptions(opts...))
}
