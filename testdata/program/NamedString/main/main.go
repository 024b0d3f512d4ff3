//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

type Mode string

const (
	ModeFast Mode = "fast"
	ModeSafe Mode = "safe"
)

func describe(m Mode) string {
	return constify.Expand1(
		constify.Over(m, ModeFast, ModeSafe),
		func(M Mode) string {
			if M == ModeFast {
				return "fast path"
			}
			return "safe path"
		},
	)
}

func main() {
	// Output: fast path safe path
	fmt.Println(describe(ModeFast), describe(ModeSafe))
}
