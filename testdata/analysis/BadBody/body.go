//go:build constify

package testdata

import "github.com/calebzulawski/constify"

func identity(A int) int { return A }

func notLiteral(n int) int {
	return constify.Expand1(
		constify.Over(n, 1, 2),
		identity, // want `body of constify.Expand1 must be a function literal`
	)
}

func blankName(n int) int {
	return constify.Expand1(
		constify.Over(n, 1, 2),
		func(_ int) int { return 0 }, // want `cannot bind a constant to the blank identifier`
	)
}
