package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvglm/scalar"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
)

// writeRow appends "[a, b, c]\n" using the default component codec.
func writeRow[T scalar.Float](sb *strings.Builder, vals []T) {
	sb.WriteString(_fmtRowOpen)
	sb.WriteString(scalar.FormatAll(vals, scalar.NewOptions()))
	sb.WriteString(_fmtRowClose)
}

// approxEqual compares two equally long slices elementwise within eps.
// NaN on either side fails the comparison.
func approxEqual[T scalar.Float](a, b []T, eps T) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= float64(eps)) {
			return false
		}
	}

	return true
}
