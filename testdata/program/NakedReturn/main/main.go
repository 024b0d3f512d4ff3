//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

// double uses a named result with a naked return in total mode.
func double(n uint32) uint32 {
	return constify.Expand1(
		constify.Over(n, 1, 2, 3),
		func(N uint32) (total uint32) {
			total = N * 2
			return
		},
	)
}

func main() {
	// Output: 2 4 6
	fmt.Println(double(1), double(2), double(3))
}
