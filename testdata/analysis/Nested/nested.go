//go:build constify

package testdata

import "github.com/calebzulawski/constify"

func outer(a, b bool) int {
	return constify.Expand1(
		constify.Over(a, true, false),
		func(A bool) int {
			return constify.Expand1( // want `cannot nest constify directives`
				constify.Over(b, true, false),
				func(B bool) int { return 0 },
			)
		},
	)
}
