// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and validation.
// Callers match them with errors.Is; returned errors carry context.
var (
	// ErrInvalidGrid indicates malformed breakpoints: an empty or single-point
	// dimension, non-increasing or non-finite values, or delimiters that do
	// not add up to the flattened length.
	ErrInvalidGrid = errors.New("grid: invalid grid")

	// ErrUnsupportedDimension indicates a dimension count outside [1, MaxDims].
	ErrUnsupportedDimension = errors.New("grid: unsupported dimension count")
)

// gridErrorf wraps err with a formatted context message.
func gridErrorf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
