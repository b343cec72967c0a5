// SPDX-License-Identifier: MIT

// Package matrix - Inverse for Mat3/Mat4 via LU decomposition.
//
// Blueprint:
//
//	Stage 1 (Prepare): copy the column-major storage into a row-major work area.
//	Stage 2 (Decompose): P·A = L·U via Doolittle with partial pivoting.
//	Stage 3 (Execute): for each identity column eᵢ, solve L·y = P·eᵢ then U·x = y.
//	Stage 4 (Finalize): write each x as a column of the inverse.
//
// Complexity: O(n³) with n ∈ {3, 4}; no heap beyond the fixed work slices.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvglm/scalar"
)

// Inverse returns m⁻¹, or ErrSingular when m has no inverse.
// For rotation matrices the result equals Transpose up to rounding.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	a := m.array()
	inv, err := luInverse(a[:], 3)
	if err != nil {
		return Mat3[T]{}, fmt.Errorf("Mat3.Inverse: %w", err)
	}
	var out [9]T
	copy(out[:], inv)

	return mat3FromArray(out), nil
}

// Inverse returns m⁻¹, or ErrSingular when m has no inverse.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	a := m.array()
	inv, err := luInverse(a[:], 4)
	if err != nil {
		return Mat4[T]{}, fmt.Errorf("Mat4.Inverse: %w", err)
	}
	var out [16]T
	copy(out[:], inv)

	return mat4FromArray(out), nil
}

// luInverse inverts the n×n column-major matrix a and returns the inverse in
// column-major order.
func luInverse[T scalar.Float](a []T, n int) ([]T, error) {
	// Stage 1: row-major work copy, identity permutation
	w := make([]T, n*n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			w[r*n+c] = a[c*n+r]
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 2: compact LU; L below the diagonal (unit diagonal implied), U on and above
	var (
		i, j, k, p int
		best       float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(float64(w[k*n+k]))
		for i = k + 1; i < n; i++ {
			if v := math.Abs(float64(w[i*n+k])); v > best {
				p, best = i, v
			}
		}
		if best == 0 || math.IsNaN(best) {
			return nil, fmt.Errorf("zero pivot at %d: %w", k, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[p*n+j] = w[p*n+j], w[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			w[i*n+k] /= w[k*n+k]
			for j = k + 1; j < n; j++ {
				w[i*n+j] -= w[i*n+k] * w[k*n+j]
			}
		}
	}

	// Stage 3+4: one column of the inverse per basis vector
	inv := make([]T, n*n)
	y := make([]T, n)
	var sum T
	for col := 0; col < n; col++ {
		// Forward substitution: L·y = P·e_col
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += w[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y, x written straight into the result column
		x := inv[col*n : col*n+n]
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += w[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / w[i*n+i]
		}
	}

	return inv, nil
}
