//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func sum(a, b uint32, addA, addB bool) uint32 {
	return constify.Expand2(
		constify.Over(addA, true, false),
		constify.Over(addB, true, false),
		func(A, B bool) uint32 {
			var total uint32
			if A {
				total += a
			}
			if B {
				total += b
			}
			return total
		},
	)
}

func main() {
	// Output: 0 3 4 7
	fmt.Println(sum(3, 4, false, false), sum(3, 4, true, false), sum(3, 4, false, true), sum(3, 4, true, true))
}
