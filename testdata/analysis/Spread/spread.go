//go:build constify

package testdata

import "github.com/calebzulawski/constify"

func spread(n int) int {
	candidates := []int{1, 2}
	return constify.Expand1(
		constify.Over(n, candidates...), // want `candidates must be listed literally; cannot spread with \.\.\.`
		func(A int) int { return A },
	)
}
