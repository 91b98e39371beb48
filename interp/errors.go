// SPDX-License-Identifier: MIT

package interp

import (
	"errors"

	"github.com/katalvlaran/lutgrid/grid"
	"github.com/katalvlaran/lutgrid/table"
)

var (
	// ErrNotReady indicates an operation issued before the Interpolator
	// reached the state it needs (e.g. Interpolate before CalculateGradients).
	ErrNotReady = errors.New("interp: interpolator not ready")

	// ErrSealed indicates a mutation of an Interpolator that has already been
	// validated.
	ErrSealed = errors.New("interp: interpolator is sealed")

	// ErrInvalidPoint indicates a query coordinate that is NaN.
	ErrInvalidPoint = errors.New("interp: invalid query point")
)

// Aliases of the leaf-package sentinels, so callers of this package can
// branch on every construction and query failure with one import.
var (
	ErrInvalidGrid          = grid.ErrInvalidGrid
	ErrUnsupportedDimension = grid.ErrUnsupportedDimension
	ErrDimensionMismatch    = table.ErrDimensionMismatch
)
