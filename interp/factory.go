// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/lutgrid/grid"
)

// Build validates its inputs and returns a ready Interpolator.
//
// Algorithm Outline:
//  1. Flatten and validate the grid (ErrInvalidGrid, ErrUnsupportedDimension).
//  2. Dispatch on the delimiter count to the matching corner variant.
//  3. Add each function in order; the first length mismatch aborts with
//     ErrDimensionMismatch.
//  4. Validate the populated structure and compute gradients; any
//     inconsistency yields ErrInvalidGrid.
//
// Construction is all-or-nothing: on error the result is nil.
//
// Example:
//
//	ip, err := interp.Build(
//	  [][]float64{{0, 1, 2}, {0, 10}},
//	  [][]float64{{0, 10, 1, 11, 2, 12}},
//	)
//	vals, err := ip.Interpolate([]float64{1, 5}, false) // [6]
func Build(perDimension [][]float64, functions [][]float64, opts ...Option) (*Interpolator, error) {
	spec, err := grid.Build(perDimension)
	if err != nil {
		return nil, fmt.Errorf("interp.Build: %w", err)
	}

	ip, err := New(spec, opts...)
	if err != nil {
		return nil, err
	}

	for _, f := range functions {
		if err := ip.AddFunction(f); err != nil {
			return nil, fmt.Errorf("interp.Build: %w", err)
		}
	}

	if err := ip.Validate(); err != nil {
		return nil, err
	}
	if err := ip.CalculateGradients(); err != nil {
		return nil, fmt.Errorf("interp.Build: %w: %w", ErrInvalidGrid, err)
	}

	return ip, nil
}
