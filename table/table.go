// SPDX-License-Identifier: MIT

package table

import "fmt"

// Table is an ordered list of sample arrays sharing one grid.
// nodes is the required length of every array; funcs[k] is the k-th added
// function.
type Table struct {
	nodes int
	funcs [][]float64
}

// New returns an empty Table whose functions must each hold nodes samples.
// Returns ErrInvalidSize if nodes ≤ 0.
func New(nodes int) (*Table, error) {
	if nodes <= 0 {
		return nil, fmt.Errorf("table.New(%d): %w", nodes, ErrInvalidSize)
	}
	return &Table{nodes: nodes}, nil
}

// Add appends a copy of values as the next function.
// On ErrDimensionMismatch the Table is left unchanged.
// Complexity: O(nodes).
func (tb *Table) Add(values []float64) error {
	if len(values) != tb.nodes {
		return fmt.Errorf("table.Add: function %d has %d samples, grid has %d nodes: %w",
			len(tb.funcs), len(values), tb.nodes, ErrDimensionMismatch)
	}
	tb.funcs = append(tb.funcs, append([]float64(nil), values...))

	return nil
}

// Len returns the number of functions.
func (tb *Table) Len() int {
	return len(tb.funcs)
}

// Nodes returns the required sample count per function.
func (tb *Table) Nodes() int {
	return tb.nodes
}

// Function returns a copy of the k-th function's samples.
func (tb *Table) Function(k int) ([]float64, error) {
	if k < 0 || k >= len(tb.funcs) {
		return nil, fmt.Errorf("table.Function(%d): %w", k, ErrFunctionIndex)
	}
	return append([]float64(nil), tb.funcs[k]...), nil
}

// At returns sample node of function k without bounds checks beyond the
// runtime's; it is the evaluator's hot path.
func (tb *Table) At(k, node int) float64 {
	return tb.funcs[k][node]
}

// Samples returns the k-th function's internal slice for read-only use by
// packages that own the Table.
func (tb *Table) Samples(k int) []float64 {
	return tb.funcs[k]
}

// Clone returns a deep copy of the Table.
// Complexity: O(functions × nodes).
func (tb *Table) Clone() *Table {
	out := &Table{nodes: tb.nodes, funcs: make([][]float64, len(tb.funcs))}
	for k, f := range tb.funcs {
		out.funcs[k] = append([]float64(nil), f...)
	}
	return out
}
