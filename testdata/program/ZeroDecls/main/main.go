//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

func seven() int {
	return constify.Expand0(func() int {
		return 7
	})
}

func sevenOrErr() (int, error) {
	return constify.TryExpand0(func() int {
		return 7
	})
}

func main() {
	n, err := sevenOrErr()

	// Output: 7 7 <nil>
	fmt.Println(seven(), n, err)
}
