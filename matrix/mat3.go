// SPDX-License-Identifier: MIT

// Package matrix - Mat3: column-major 3×3 storage & safe accessors.
//
// Layout:
//   - Fields are declared column by column: M00, M01, M02 is column 0.
//   - The flat column-major offset of (col, row) is col*3 + row.
//
// Complexity quicksheet:
//   - At/Set/Col/Row: O(1); Mul: 27 mul-adds; MulVec3: 9 mul-adds.
package matrix

import (
	"strings"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// Mat3 is a column-major 3×3 matrix; Mcr is column c, row r.
type Mat3[T scalar.Float] struct {
	M00, M01, M02 T // column 0
	M10, M11, M12 T // column 1
	M20, M21, M22 T // column 2
}

// NewMat3 builds a Mat3 from nine values in column-major order.
func NewMat3[T scalar.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) Mat3[T] {
	return Mat3[T]{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
		M20: m20, M21: m21, M22: m22,
	}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T scalar.Float]() Mat3[T] {
	return Mat3[T]{M00: 1, M11: 1, M22: 1}
}

// Mat3FromCols builds a Mat3 from its three columns.
func Mat3FromCols[T scalar.Float](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return NewMat3(c0.X, c0.Y, c0.Z, c1.X, c1.Y, c1.Z, c2.X, c2.Y, c2.Z)
}

// Mat3FromMat4 returns the upper-left 3×3 block of m.
func Mat3FromMat4[T scalar.Float](m Mat4[T]) Mat3[T] {
	return NewMat3(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

// array returns the nine components in column-major order.
func (m Mat3[T]) array() [9]T {
	return [9]T{m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22}
}

// mat3FromArray is the inverse of array.
func mat3FromArray[T scalar.Float](a [9]T) Mat3[T] {
	return NewMat3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Values returns the nine components in column-major order.
func (m Mat3[T]) Values() []T {
	a := m.array()
	return a[:]
}

// At returns the element in column col, row row.
// Returns ErrOutOfRange unless 0 ≤ col, row < 3.
func (m Mat3[T]) At(col, row int) (T, error) {
	if col < 0 || col >= 3 || row < 0 || row >= 3 {
		var zero T
		return zero, matrixErrorf("Mat3", ctxAt, col, row, ErrOutOfRange)
	}

	return m.array()[col*3+row], nil
}

// Set assigns the element in column col, row row; m is unchanged on error.
func (m *Mat3[T]) Set(col, row int, v T) error {
	if col < 0 || col >= 3 || row < 0 || row >= 3 {
		return matrixErrorf("Mat3", ctxSet, col, row, ErrOutOfRange)
	}
	a := m.array()
	a[col*3+row] = v
	*m = mat3FromArray(a)

	return nil
}

// Col returns column i.
func (m Mat3[T]) Col(i int) (vec.Vec3[T], error) {
	switch i {
	case 0:
		return vec.New3(m.M00, m.M01, m.M02), nil
	case 1:
		return vec.New3(m.M10, m.M11, m.M12), nil
	case 2:
		return vec.New3(m.M20, m.M21, m.M22), nil
	}

	return vec.Vec3[T]{}, matrixErrorf("Mat3", ctxCol, i, 0, ErrOutOfRange)
}

// Row returns row i.
func (m Mat3[T]) Row(i int) (vec.Vec3[T], error) {
	switch i {
	case 0:
		return vec.New3(m.M00, m.M10, m.M20), nil
	case 1:
		return vec.New3(m.M01, m.M11, m.M21), nil
	case 2:
		return vec.New3(m.M02, m.M12, m.M22), nil
	}

	return vec.Vec3[T]{}, matrixErrorf("Mat3", ctxRow, 0, i, ErrOutOfRange)
}

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return NewMat3(m.M00, m.M10, m.M20, m.M01, m.M11, m.M21, m.M02, m.M12, m.M22)
}

// Mul returns the product m·o (o is applied first).
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	a, b := m.array(), o.array()
	var out [9]T
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var s T
			for k := 0; k < 3; k++ {
				s += a[k*3+r] * b[c*3+k]
			}
			out[c*3+r] = s
		}
	}

	return mat3FromArray(out)
}

// MulVec3 returns m·v.
func (m Mat3[T]) MulVec3(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{
		X: m.M00*v.X + m.M10*v.Y + m.M20*v.Z,
		Y: m.M01*v.X + m.M11*v.Y + m.M21*v.Z,
		Z: m.M02*v.X + m.M12*v.Y + m.M22*v.Z,
	}
}

// Determinant returns det(m); rotation matrices have determinant 1.
func (m Mat3[T]) Determinant() T {
	return m.M00*(m.M11*m.M22-m.M21*m.M12) -
		m.M10*(m.M01*m.M22-m.M21*m.M02) +
		m.M20*(m.M01*m.M12-m.M11*m.M02)
}

// Equal reports exact equality of every element (NaN never equals NaN).
func (m Mat3[T]) Equal(o Mat3[T]) bool { return m == o }

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3[T]) ApproxEqual(o Mat3[T], eps T) bool {
	return approxEqual(m.Values(), o.Values(), eps)
}

// String renders one row per line, e.g. "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n".
func (m Mat3[T]) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		row, _ := m.Row(r) // bounds-safe: r < 3
		writeRow(&sb, row.Values())
	}

	return sb.String()
}
