//go:build constify

package testdata

import "github.com/calebzulawski/constify"

var limit = 3

func notConstant(n int) int {
	return constify.Expand1(
		constify.Over(n, 1, limit), // want `candidate limit for A is not a constant expression`
		func(A int) int { return A },
	)
}

func duplicate(n int) int {
	return constify.Expand1(
		constify.Over(n, 1, 1), // want `duplicate candidate 1 for A`
		func(A int) int { return A },
	)
}

func empty(n int) int {
	return constify.Expand1(
		constify.Over(n), // want `need at least 1 candidate for A`
		func(A int) int { return A },
	)
}
