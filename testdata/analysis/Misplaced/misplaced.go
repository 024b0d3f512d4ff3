//go:build constify

package testdata

import "github.com/calebzulawski/constify"

func assigned(n int) int {
	m := constify.Expand1( // want `constify.Expand1 must be returned directly from a function`
		constify.Over(n, 1, 2),
		func(A int) int { return A },
	)
	return m
}

var strayDecl = constify.Over(3, 1, 2) // want `constify.Over must be a declaration argument of an expansion directive`
