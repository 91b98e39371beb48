// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/lutgrid/grid"
)

// variant is the dimension-specific part of an Interpolator: the number of
// cell corners and, for every corner bit pattern c, the flat node offset of
// that corner from the cell's lowest node. Bit d of c set means "upper
// breakpoint along dimension d".
type variant struct {
	dims    int
	corners int
	offsets []int
}

// dispatch selects the variant for s by its delimiter count.
// One generic evaluator serves every D; only the corner table differs.
func dispatch(s *grid.Spec) (*variant, error) {
	switch d := s.Dims(); d {
	case 1, 2, 3, 4, 5:
		return newVariant(s), nil
	default:
		return nil, fmt.Errorf("interp: dispatch %d dimensions: %w", d, ErrUnsupportedDimension)
	}
}

// newVariant precomputes the 2^D corner offsets of s.
// Complexity: O(2^D × D).
func newVariant(s *grid.Spec) *variant {
	dims := s.Dims()
	v := &variant{dims: dims, corners: 1 << dims, offsets: make([]int, 1<<dims)}
	for c := range v.offsets {
		off := 0
		for d := 0; d < dims; d++ {
			if c&(1<<d) != 0 {
				off += s.Stride(d)
			}
		}
		v.offsets[c] = off
	}
	return v
}
