package quat_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/vec"
)

var (
	sinkQ quat.QDouble
	sinkV vec.Double3
)

// BenchmarkMul measures the Hamilton product.
func BenchmarkMul(b *testing.B) {
	q := quat.Normalized(quat.New(1.0, 2, 3, 4))
	r := q
	for i := 0; i < b.N; i++ {
		r = r.Mul(q)
	}
	sinkQ = r
}

// BenchmarkRotateVec3 measures vector rotation.
func BenchmarkRotateVec3(b *testing.B) {
	q := quat.Normalized(quat.New(1.0, 2, 3, 4))
	v := vec.New3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		v = quat.RotateVec3(q, v)
	}
	sinkV = v
}

// BenchmarkSLerp measures spherical interpolation.
func BenchmarkSLerp(b *testing.B) {
	a := quat.Identity[float64]()
	c := quat.Normalized(quat.New(1.0, 2, 3, 4))
	for i := 0; i < b.N; i++ {
		sinkQ = quat.SLerp(a, c, 0.37)
	}
}

// BenchmarkFromMat3 measures rotation extraction.
func BenchmarkFromMat3(b *testing.B) {
	m := quat.ToMat3(quat.Normalized(quat.New(1.0, 2, 3, 4)))
	for i := 0; i < b.N; i++ {
		sinkQ = quat.FromMat3(m)
	}
}
