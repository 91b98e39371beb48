// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/lutgrid/interp"
)

// Handle identifies one registered interpolator. The zero Handle is never
// issued.
type Handle int64

// Registry owns the interpolators registered with it.
// mu guards next, entries and closed; m may be nil.
type Registry struct {
	mu      sync.RWMutex
	next    Handle
	entries map[Handle]*interp.Interpolator
	closed  bool
	m       *Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetrics attaches metrics. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("registry: WithMetrics: metrics must not be nil")
	}
	return func(r *Registry) { r.m = m }
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{entries: make(map[Handle]*interp.Interpolator)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores ip under a freshly minted handle.
// Only ready interpolators are accepted, so every stored instance is
// immutable and safe for concurrent queries.
//
// Errors: ErrNilInterpolator, interp.ErrNotReady, ErrClosed.
// Complexity: amortized O(1).
func (r *Registry) Register(ip *interp.Interpolator) (Handle, error) {
	if ip == nil {
		return 0, ErrNilInterpolator
	}
	if ip.State() != interp.GradientsReady {
		return 0, fmt.Errorf("registry.Register: state %s: %w", ip.State(), interp.ErrNotReady)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	r.next++
	h := r.next
	r.entries[h] = ip
	r.m.added(len(r.entries))

	return h, nil
}

// Lookup resolves h.
// Errors: ErrNotFound, ErrClosed.
func (r *Registry) Lookup(h Handle) (*interp.Interpolator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, ErrClosed
	}
	ip, ok := r.entries[h]
	if !ok {
		return nil, fmt.Errorf("registry.Lookup(%d): %w", h, ErrNotFound)
	}
	return ip, nil
}

// Interpolate resolves h and evaluates it at point, recording the outcome
// in the attached metrics.
func (r *Registry) Interpolate(h Handle, point []float64, closedRange bool) ([]float64, error) {
	ip, err := r.Lookup(h)
	if err != nil {
		r.m.query(resultNotFound)
		return nil, err
	}
	out, err := ip.Interpolate(point, closedRange)
	if err != nil {
		r.m.query(resultError)
		return nil, fmt.Errorf("registry.Interpolate(%d): %w", h, err)
	}
	r.m.query(resultOK)
	return out, nil
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Handles returns the live handles in ascending (issue) order.
// Complexity: O(n log n).
func (r *Registry) Handles() []Handle {
	r.mu.RLock()
	out := make([]Handle, 0, len(r.entries))
	for h := range r.entries {
		out = append(out, h)
	}
	r.mu.RUnlock()

	slices.Sort(out)
	return out
}

// Metrics returns the attached metrics, or nil.
func (r *Registry) Metrics() *Metrics {
	return r.m
}

// Close drops every entry and unregisters the attached metrics; later
// calls fail with ErrClosed. Close is idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	clear(r.entries)
	r.m.unregister()
	return nil
}
