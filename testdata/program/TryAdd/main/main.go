//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func add(a, b uint32) (uint32, error) {
	return constify.TryExpand2(
		constify.Over(a, 1, 2),
		constify.Over(b, 2, 3),
		func(A, B uint32) uint32 {
			return A + B
		},
	)
}

// double uses a named result, so its body can use a naked return.
func double(n uint32) (uint32, error) {
	return constify.TryExpand1(
		constify.Over(n, 1, 2, 3),
		func(N uint32) (total uint32) {
			total = N * 2
			return
		},
	)
}

func main() {
	sum, err := add(1, 3)
	// Output: 4 <nil>
	fmt.Println(sum, err)

	six, err := double(3)
	// Output: 6 <nil>
	fmt.Println(six, err)
}
