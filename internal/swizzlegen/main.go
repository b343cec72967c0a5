// Command swizzlegen writes the swizzle accessors of package vec.
//
// For every source arity (Vec2, Vec3, Vec4) it emits one read method per
// 2-, 3- and 4-letter word over the source's components, once with the
// positional letters x,y,z,w and once with the color letters r,g,b,a.
// Words without repeated letters additionally get a Set method.
//
// Usage (from package vec):
//
//	//go:generate go run ../internal/swizzlegen -o swizzle_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const header = `// Code generated by swizzlegen. DO NOT EDIT.

package vec
`

// letterSets are the two naming schemes; index i names component fields[i].
var letterSets = []string{"XYZW", "RGBA"}

var fields = [4]string{"X", "Y", "Z", "W"}

func main() {
	out := flag.String("o", "swizzle_gen.go", "output file")
	flag.Parse()

	src, err := format.Source(generate())
	if err != nil {
		log.Fatalf("swizzlegen: format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("swizzlegen: write %s: %v", *out, err)
	}
}

// generate renders the whole file, Vec2 first, getters before setters.
func generate() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	for src := 2; src <= 4; src++ {
		for _, set := range letterSets {
			fmt.Fprintf(&b, "\n// Vec%d read swizzles over %s.\n", src, strings.ToLower(set[:src]))
			for n := 2; n <= 4; n++ {
				words(src, n, func(idx []int) { writeGetter(&b, src, set, idx) })
			}
		}
		for _, set := range letterSets {
			fmt.Fprintf(&b, "\n// Vec%d write swizzles over %s.\n", src, strings.ToLower(set[:src]))
			for n := 2; n <= src; n++ {
				words(src, n, func(idx []int) {
					if distinct(idx) {
						writeSetter(&b, src, set, idx)
					}
				})
			}
		}
	}

	return b.Bytes()
}

// words calls fn for every n-letter word over an alphabet of size src,
// in lexicographic order with the first letter most significant.
func words(src, n int, fn func(idx []int)) {
	idx := make([]int, n)
	for {
		fn(idx)
		i := n - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < src {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

func distinct(idx []int) bool {
	var seen [4]bool
	for _, i := range idx {
		if seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

func name(set string, idx []int) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteByte(set[i])
	}

	return sb.String()
}

func writeGetter(b *bytes.Buffer, src int, set string, idx []int) {
	elems := make([]string, len(idx))
	for k, i := range idx {
		elems[k] = "v." + fields[i]
	}
	fmt.Fprintf(b, "\nfunc (v Vec%d[T]) %s() Vec%d[T] { return Vec%d[T]{%s} }\n",
		src, name(set, idx), len(idx), len(idx), strings.Join(elems, ", "))
}

func writeSetter(b *bytes.Buffer, src int, set string, idx []int) {
	lhs := make([]string, len(idx))
	rhs := make([]string, len(idx))
	for k, i := range idx {
		lhs[k] = "v." + fields[i]
		rhs[k] = "s." + fields[k]
	}
	fmt.Fprintf(b, "\nfunc (v *Vec%d[T]) Set%s(s Vec%d[T]) { %s = %s }\n",
		src, name(set, idx), len(idx), strings.Join(lhs, ", "), strings.Join(rhs, ", "))
}
