package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/vec"
)

// ExampleMat3_MulVec3 rotates X onto Y with a column-major quarter turn.
func ExampleMat3_MulVec3() {
	m := matrix.Mat3FromCols(vec.New3(0.0, 1, 0), vec.New3(-1.0, 0, 0), vec.New3(0.0, 0, 1))
	fmt.Println(m.MulVec3(vec.New3(1.0, 0, 0)))
	fmt.Print(m)
	// Output:
	// 0, 1, 0
	// [0, -1, 0]
	// [1, 0, 0]
	// [0, 0, 1]
}

// ExampleMat3_At shows the out-of-range error.
func ExampleMat3_At() {
	m := matrix.Identity3[float32]()
	_, err := m.At(0, 3)
	fmt.Println(err)
	// Output:
	// Mat3.At(0,3): lvglm: index out of range
}
