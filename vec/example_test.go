package vec_test

import (
	"fmt"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/vec"
)

// ExampleVec4_XXZZ reads a swizzle with repeated components.
func ExampleVec4_XXZZ() {
	b := vec.New4(true, false, true, true)
	fmt.Println(b.XXZZ())
	// Output:
	// true, true, true, true
}

// ExampleParse3 parses the default text layout and a custom separator.
func ExampleParse3() {
	v, err := vec.Parse3[int32]("1, 2, 3")
	fmt.Println(v.ZYX(), err)

	w, err := vec.Parse3[float64]("0.5;1.5;2.5", scalar.WithSeparator(";"))
	fmt.Println(w.FormatWith(scalar.WithSeparator(" | ")), err)

	_, err = vec.Parse3[int32]("1, 2")
	fmt.Println(err)
	// Output:
	// 3, 2, 1 <nil>
	// 0.5 | 1.5 | 2.5 <nil>
	// Parse3: Split: got 2 parts, want 3: lvglm: wrong component count: lvglm: invalid format
}
