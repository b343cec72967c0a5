// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Sentinels are shared with package scalar so errors.Is matches across the
// value-type packages. Accessors wrap them with their method and coordinates.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvglm/scalar"
)

var (
	// ErrOutOfRange indicates that a column or row index is outside valid bounds.
	// Public indexers (At/Set/Col/Row) MUST return this, not panic.
	ErrOutOfRange = scalar.ErrOutOfRange

	// ErrSingular is returned by Inverse when a zero pivot remains after
	// partial pivoting.
	ErrSingular = errors.New("lvglm: matrix is singular")
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// matrixErrorf wraps err with a uniform "<Type>.<method>(col,row)" context.
func matrixErrorf(typ, method string, col, row int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, col, row, err)
}
