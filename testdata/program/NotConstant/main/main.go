//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func pick(a, b int) int {
	return constify.Expand1(
		constify.Over(a, 1, b),
		func(A int) int {
			return A
		},
	)
}

func main() {
	fmt.Println(pick(1, 2))
}
