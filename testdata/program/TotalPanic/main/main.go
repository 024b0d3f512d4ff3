//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func scale(level int) int {
	return constify.Expand1(
		constify.Over(level, 1, 2),
		func(Level int) int {
			return Level * 10
		},
	)
}

func main() {
	defer func() {
		// Output: constify: unexpected value for `Level`
		fmt.Println(recover())
	}()

	fmt.Println(scale(1))
	fmt.Println(scale(9))
}
