// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/lutgrid/interp"
	"github.com/katalvlaran/lutgrid/registry"
)

// Failure taxonomy, re-exported so callers branch with one import.
var (
	ErrInvalidGrid          = interp.ErrInvalidGrid
	ErrUnsupportedDimension = interp.ErrUnsupportedDimension
	ErrDimensionMismatch    = interp.ErrDimensionMismatch
	ErrNotReady             = interp.ErrNotReady
	ErrInvalidPoint         = interp.ErrInvalidPoint
	ErrNotFound             = registry.ErrNotFound
	ErrClosed               = registry.ErrClosed
)
