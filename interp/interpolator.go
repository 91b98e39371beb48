// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lutgrid/grid"
	"github.com/katalvlaran/lutgrid/table"
)

// New starts an Interpolator over spec in state Constructing.
// spec is shared read-only; a grid.Spec never changes after Build.
//
// Errors: ErrInvalidGrid for a nil or inconsistent spec,
// ErrUnsupportedDimension for D ∉ [1, 5].
func New(spec *grid.Spec, opts ...Option) (*Interpolator, error) {
	// Stage 1 (Validate): the grid must be sound before anything is sized on it.
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("interp.New: %w", err)
	}

	// Stage 2 (Prepare): pick the dimension variant and size the table.
	v, err := dispatch(spec)
	if err != nil {
		return nil, err
	}
	tab, err := table.New(spec.NodeCount())
	if err != nil {
		return nil, fmt.Errorf("interp.New: %w", err)
	}

	// Stage 3 (Finalize): apply options.
	ip := &Interpolator{
		spec:           spec,
		tab:            tab,
		v:              v,
		state:          Constructing,
		allowNonFinite: DefaultAllowNonFinite,
	}
	for _, opt := range opts {
		opt(ip)
	}

	return ip, nil
}

// AddFunction appends one sample array, row-major over the grid nodes.
// Errors: ErrSealed once validated, ErrDimensionMismatch on a length
// mismatch (the array is not retained).
func (ip *Interpolator) AddFunction(values []float64) error {
	if ip.state != Constructing {
		return fmt.Errorf("interp.AddFunction in state %s: %w", ip.state, ErrSealed)
	}
	return ip.tab.Add(values)
}

// Validate checks the populated structure and seals it (state Validated).
// Calling it on a validated or ready Interpolator re-checks without changing
// state.
//
// Errors (all ErrInvalidGrid): inconsistent grid, table sized for another
// grid, no functions, non-finite samples unless WithAllowNonFinite.
// Complexity: O(nodes × functions).
func (ip *Interpolator) Validate() error {
	if err := ip.spec.Validate(); err != nil {
		return fmt.Errorf("interp.Validate: %w", err)
	}
	if ip.tab.Nodes() != ip.spec.NodeCount() {
		return fmt.Errorf("interp.Validate: table has %d nodes, grid %d: %w",
			ip.tab.Nodes(), ip.spec.NodeCount(), ErrInvalidGrid)
	}
	if ip.tab.Len() == 0 {
		return fmt.Errorf("interp.Validate: no functions: %w", ErrInvalidGrid)
	}
	if ip.v == nil || ip.v.dims != ip.spec.Dims() {
		return fmt.Errorf("interp.Validate: corner table does not match %d dimensions: %w",
			ip.spec.Dims(), ErrInvalidGrid)
	}
	if !ip.allowNonFinite {
		for k := 0; k < ip.tab.Len(); k++ {
			for node, x := range ip.tab.Samples(k) {
				if math.IsNaN(x) || math.IsInf(x, 0) {
					return fmt.Errorf("interp.Validate: function %d node %v is not finite: %w",
						k, ip.spec.Coordinate(node), ErrInvalidGrid)
				}
			}
		}
	}

	if ip.state == Constructing {
		ip.state = Validated
	}
	return nil
}

// State reports the lifecycle stage.
func (ip *Interpolator) State() State {
	return ip.state
}

// Dims returns the grid dimension count.
func (ip *Interpolator) Dims() int {
	return ip.spec.Dims()
}

// Functions returns the number of registered functions.
func (ip *Interpolator) Functions() int {
	return ip.tab.Len()
}

// Name returns the diagnostic label set by WithName, or "".
func (ip *Interpolator) Name() string {
	return ip.name
}

// Grid returns the grid the Interpolator samples over.
func (ip *Interpolator) Grid() *grid.Spec {
	return ip.spec
}

// Info returns a snapshot for diagnostics.
func (ip *Interpolator) Info() Info {
	return Info{
		Name:      ip.name,
		Dims:      ip.spec.Dims(),
		Sizes:     ip.spec.Sizes(),
		Nodes:     ip.spec.NodeCount(),
		Functions: ip.tab.Len(),
		State:     ip.state,
	}
}
