//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

var log []string

func trace(name string, v bool) bool {
	log = append(log, name)
	return v
}

func pick(x, y bool) int {
	return constify.Expand2(
		constify.Over(trace("x", x), true, false),
		constify.Over(trace("y", y), true, false),
		func(X, Y bool) int {
			n := 0
			if X {
				n += 1
			}
			if Y {
				n += 2
			}
			return n
		},
	)
}

func main() {
	// Output: 3
	fmt.Println(pick(true, true))

	// Each declared value is evaluated exactly once, in declaration order.
	// Output: [x y]
	fmt.Println(log)
}
