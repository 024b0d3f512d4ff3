//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

var evalA, evalB int

func bumpA(v uint32) uint32 { evalA++; return v }
func bumpB(v uint32) uint32 { evalB++; return v }

func add(a, b uint32) (uint32, error) {
	return constify.TryExpand2(
		constify.Over(bumpA(a), 1, 2),
		constify.Over(bumpB(b), 2, 3),
		func(A, B uint32) uint32 {
			return A + B
		},
	)
}

func main() {
	sum, err := add(7, 2)

	// Output: 0 unexpected value for `A`
	fmt.Println(sum, err)

	// A mismatch on the first declaration returns before the second value is
	// evaluated.
	// Output: 1 0
	fmt.Println(evalA, evalB)
}
