package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/vec"
)

var (
	sinkM4 matrix.Mat4[float64]
	sinkV3 vec.Double3
)

// BenchmarkMat4_Mul measures the 4×4 product.
func BenchmarkMat4_Mul(b *testing.B) {
	m := matrix.NewMat4(1.0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(m)
	}
}

// BenchmarkMat3_MulVec3 measures matrix-vector multiplication.
func BenchmarkMat3_MulVec3(b *testing.B) {
	m := matrix.NewMat3(1.0, 2, 3, 4, 5, 6, 7, 8, 9)
	v := vec.New3(1.0, 0, 0)
	for i := 0; i < b.N; i++ {
		v = m.MulVec3(v)
	}
	sinkV3 = v
}
