// SPDX-License-Identifier: MIT

// Package matrix - Mat4: column-major 4×4 storage & safe accessors.
//
// Layout:
//   - Fields are declared column by column: M00..M03 is column 0.
//   - The flat column-major offset of (col, row) is col*4 + row.
package matrix

import (
	"strings"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Mat4 is a column-major 4×4 matrix; Mcr is column c, row r.
type Mat4[T scalar.Float] struct {
	M00, M01, M02, M03 T // column 0
	M10, M11, M12, M13 T // column 1
	M20, M21, M22, M23 T // column 2
	M30, M31, M32, M33 T // column 3
}

// NewMat4 builds a Mat4 from sixteen values in column-major order.
func NewMat4[T scalar.Float](m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23, m30, m31, m32, m33 T) Mat4[T] {
	return Mat4[T]{
		M00: m00, M01: m01, M02: m02, M03: m03,
		M10: m10, M11: m11, M12: m12, M13: m13,
		M20: m20, M21: m21, M22: m22, M23: m23,
		M30: m30, M31: m31, M32: m32, M33: m33,
	}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T scalar.Float]() Mat4[T] {
	return Mat4[T]{M00: 1, M11: 1, M22: 1, M33: 1}
}

// Mat4FromCols builds a Mat4 from its four columns.
func Mat4FromCols[T scalar.Float](c0, c1, c2, c3 vec.Vec4[T]) Mat4[T] {
	return NewMat4(
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	)
}

// Mat4FromMat3 embeds m in the upper-left block of an identity Mat4.
func Mat4FromMat3[T scalar.Float](m Mat3[T]) Mat4[T] {
	return NewMat4(
		m.M00, m.M01, m.M02, 0,
		m.M10, m.M11, m.M12, 0,
		m.M20, m.M21, m.M22, 0,
		0, 0, 0, 1,
	)
}

// array returns the sixteen components in column-major order.
func (m Mat4[T]) array() [16]T {
	return [16]T{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

// mat4FromArray is the inverse of array.
func mat4FromArray[T scalar.Float](a [16]T) Mat4[T] {
	return NewMat4(
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	)
}

// Values returns the sixteen components in column-major order.
func (m Mat4[T]) Values() []T {
	a := m.array()
	return a[:]
}

// At returns the element in column col, row row.
// Returns ErrOutOfRange unless 0 ≤ col, row < 4.
func (m Mat4[T]) At(col, row int) (T, error) {
	if col < 0 || col >= 4 || row < 0 || row >= 4 {
		var zero T
		return zero, matrixErrorf("Mat4", ctxAt, col, row, ErrOutOfRange)
	}

	return m.array()[col*4+row], nil
}

// Set assigns the element in column col, row row; m is unchanged on error.
func (m *Mat4[T]) Set(col, row int, v T) error {
	if col < 0 || col >= 4 || row < 0 || row >= 4 {
		return matrixErrorf("Mat4", ctxSet, col, row, ErrOutOfRange)
	}
	a := m.array()
	a[col*4+row] = v
	*m = mat4FromArray(a)

	return nil
}

// Col returns column i.
func (m Mat4[T]) Col(i int) (vec.Vec4[T], error) {
	if i < 0 || i >= 4 {
		return vec.Vec4[T]{}, matrixErrorf("Mat4", ctxCol, i, 0, ErrOutOfRange)
	}
	a := m.array()

	return vec.New4(a[i*4], a[i*4+1], a[i*4+2], a[i*4+3]), nil
}

// Row returns row i.
func (m Mat4[T]) Row(i int) (vec.Vec4[T], error) {
	if i < 0 || i >= 4 {
		return vec.Vec4[T]{}, matrixErrorf("Mat4", ctxRow, 0, i, ErrOutOfRange)
	}
	a := m.array()

	return vec.New4(a[i], a[4+i], a[8+i], a[12+i]), nil
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	a := m.array()
	var out [16]T
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = a[c*4+r]
		}
	}

	return mat4FromArray(out)
}

// Mul returns the product m·o (o is applied first).
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	a, b := m.array(), o.array()
	var out [16]T
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s T
			for k := 0; k < 4; k++ {
				s += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = s
		}
	}

	return mat4FromArray(out)
}

// MulVec4 returns m·v.
func (m Mat4[T]) MulVec4(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.Vec4[T]{
		X: m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30*v.W,
		Y: m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31*v.W,
		Z: m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32*v.W,
		W: m.M03*v.X + m.M13*v.Y + m.M23*v.Z + m.M33*v.W,
	}
}

// Equal reports exact equality of every element (NaN never equals NaN).
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m == o }

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4[T]) ApproxEqual(o Mat4[T], eps T) bool {
	return approxEqual(m.Values(), o.Values(), eps)
}

// String renders one row per line.
func (m Mat4[T]) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		row, _ := m.Row(r) // bounds-safe: r < 4
		writeRow(&sb, row.Values())
	}

	return sb.String()
}
