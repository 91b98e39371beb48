// Package lutgrid is a multilinear lookup-table library for rectilinear
// grids of one to five dimensions.
//
// A table is described by strictly increasing breakpoints per dimension and
// one or more functions sampled at every grid node. Queries blend the 2^D
// corners of the enclosing cell; points outside the grid are either clamped
// to it (closed range) or extrapolated linearly from the boundary using
// precomputed finite-difference gradients (open range).
//
// Packages, leaf first:
//
//	grid/      breakpoints, validation, strides and interval location
//	table/     per-node sample arrays, one per function
//	interp/    the Interpolator: lifecycle, gradients, evaluation
//	registry/  handle-keyed store of ready interpolators + Prometheus metrics
//	config/    YAML configuration and the slog logger
//	engine/    caller-facing API: create by value, query by handle
//	cmd/lutctl command-line front end over YAML table documents
//
// Quick example, f(x, y) = x + y:
//
//	eng := engine.New()
//	defer eng.Close()
//	h, _ := eng.CreateInterpolator(
//	  [][]float64{{0, 1, 2}, {0, 10}},
//	  [][]float64{{0, 10, 1, 11, 2, 12}},
//	)
//	v, _ := eng.Interpolate(h, []float64{1, 5}, false) // [6]
//
//	go get github.com/katalvlaran/lutgrid
package lutgrid
