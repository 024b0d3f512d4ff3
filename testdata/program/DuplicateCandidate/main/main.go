//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func pick(a int) int {
	return constify.Expand1(
		constify.Over(a, 1, 1),
		func(A int) int {
			return A
		},
	)
}

func main() {
	fmt.Println(pick(1))
}
