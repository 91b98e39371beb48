// Package engine is the caller-facing entry point of lutgrid.
//
// An Engine owns one registry of interpolators. Callers create lookup tables
// from per-dimension breakpoints and sample arrays, receive an opaque
// Handle, and query by handle and point:
//
//	eng := engine.New(engine.WithLogger(logger))
//	defer eng.Close()
//
//	h, err := eng.CreateInterpolator(
//	  [][]float64{{0, 1, 2}, {0, 10}},     // breakpoints per dimension
//	  [][]float64{{0, 10, 1, 11, 2, 12}},  // one or more functions, row-major
//	)
//	vals, err := eng.Interpolate(h, []float64{1, 5}, false) // [6]
//
// Construction is all-or-nothing: a failed CreateInterpolator issues no
// handle. Every failure matches one of the sentinels re-exported here
// (ErrInvalidGrid, ErrUnsupportedDimension, ErrDimensionMismatch,
// ErrNotFound, ErrNotReady, ErrInvalidPoint, ErrClosed) via errors.Is.
//
// Hosts that index arrays from 1 can convert with FromOneBased and
// ToOneBased.
//
// Queries are safe to issue from many goroutines; creation is serialized
// inside the registry. Close tears everything down deterministically.
package engine
