package vec_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/vec"
)

var sinkV4 vec.Double4

// BenchmarkSwizzle_WZYX measures a 4-component read swizzle.
func BenchmarkSwizzle_WZYX(b *testing.B) {
	v := vec.New4(1.0, 2, 3, 4)
	for i := 0; i < b.N; i++ {
		v = v.WZYX()
	}
	sinkV4 = v
}

// BenchmarkParse4 measures text parsing of a float vector.
func BenchmarkParse4(b *testing.B) {
	s := vec.New4(0.25, -1e-3, 12345.678, 1).String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := vec.Parse4[float64](s)
		if err != nil {
			b.Fatalf("Parse4 failed: %v", err) // report and stop on error
		}
		sinkV4 = v
	}
}
