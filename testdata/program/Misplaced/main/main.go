//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func pick(a int) int {
	n := constify.Expand1(
		constify.Over(a, 1, 2),
		func(A int) int {
			return A
		},
	)
	return n
}

func main() {
	fmt.Println(pick(1))
}
