//go:build constify

package testdata

import "github.com/calebzulawski/constify"

type pair struct{ x, y int }

func structType(p pair) int {
	return constify.Expand1(
		constify.Over(p, pair{}), // want `pair is not a constant type`
		func(P pair) int { return 0 },
	)
}
