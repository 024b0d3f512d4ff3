//go:build constify

package main

import (
	"fmt"

	"github.com/calebzulawski/constify"
)

// dot computes a strided dot product. Specializing the stride lets the
// compiler see a constant loop step in each arm.
func dot(xs, ys []float64, stride int) float64 {
	return constify.Expand1(
		constify.Over(stride, 1, 2, 4),
		func(Stride int) float64 {
			var sum float64
			for i := 0; i < len(xs) && i < len(ys); i += Stride {
				sum += xs[i] * ys[i]
			}
			return sum
		},
	)
}

// checksum folds a byte slice in fixed-size blocks. An unsupported block size
// is reported as an error instead of panicking.
func checksum(data []byte, block int) (uint64, error) {
	return constify.TryExpand1(
		constify.Over(block, 4, 8),
		func(Block int) uint64 {
			var sum uint64
			for len(data) >= Block {
				var word uint64
				for i := 0; i < Block; i++ {
					word = word<<8 | uint64(data[i])
				}
				sum += word
				data = data[Block:]
			}
			return sum
		},
	)
}

func main() {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ys := []float64{8, 7, 6, 5, 4, 3, 2, 1}

	for _, stride := range []int{1, 2, 4} {
		fmt.Printf("dot stride=%d: %v\n", stride, dot(xs, ys, stride))
	}

	data := []byte("constify example")
	for _, block := range []int{4, 8, 3} {
		sum, err := checksum(data, block)
		if err != nil {
			fmt.Println("checksum:", err)
			continue
		}
		fmt.Printf("checksum block=%d: %d\n", block, sum)
	}
}
