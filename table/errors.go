// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrDimensionMismatch indicates a sample array (or query point) whose
	// length does not match the grid it is used with.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrInvalidSize indicates a non-positive node count.
	ErrInvalidSize = errors.New("table: node count must be > 0")

	// ErrFunctionIndex indicates a function index outside [0, Len()).
	ErrFunctionIndex = errors.New("table: function index out of range")
)
