// Package table holds the sampled function arrays of a lookup table.
//
// A Table is bound to a node count (the product of the grid's dimension
// sizes). Every function added to it must provide exactly one sample per
// node, ordered row-major with the last grid dimension varying fastest; see
// package grid. Functions keep their registration order, which is also the
// order of the values returned by an interpolation.
package table
