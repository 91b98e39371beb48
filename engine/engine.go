// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/katalvlaran/lutgrid/config"
	"github.com/katalvlaran/lutgrid/interp"
	"github.com/katalvlaran/lutgrid/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Handle identifies one interpolator of an Engine.
type Handle = registry.Handle

// Engine owns the interpolators created through it.
type Engine struct {
	id            string
	reg           *registry.Registry
	log           *slog.Logger
	defaultClosed bool
	closed        atomic.Bool
}

// New returns an empty Engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	var regOpts []registry.Option
	if o.registerer != nil {
		m := registry.NewMetrics(o.registerer, o.namespace, prometheus.Labels{"engine": id})
		regOpts = append(regOpts, registry.WithMetrics(m))
	}

	return &Engine{
		id:            id,
		reg:           registry.New(regOpts...),
		log:           o.logger.With(slog.String("engine", id)),
		defaultClosed: o.defaultClosed,
	}
}

// FromConfig builds an Engine from a validated configuration. Metrics, when
// enabled, go to prometheus.DefaultRegisterer unless opts pass WithMetrics.
// opts are applied after the configuration and win over it.
func FromConfig(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine.FromConfig: %w", err)
	}

	base := []Option{WithDefaultClosedRange(cfg.DefaultClosedRange)}
	if cfg.Metrics.Enabled {
		base = append(base, WithNamespace(cfg.Metrics.Namespace), WithMetrics(prometheus.DefaultRegisterer))
	}
	return New(append(base, opts...)...), nil
}

// ID returns the engine's unique identifier (also its "engine" metric label).
func (e *Engine) ID() string {
	return e.id
}

// CreateInterpolator validates and builds a lookup table and registers it.
//
// grid holds one strictly increasing breakpoint sequence per dimension
// (1 to 5 dimensions); each entry of functions holds one sample per grid
// node, row-major with the last dimension varying fastest.
//
// On any error no handle is issued and nothing is retained.
// Errors: ErrInvalidGrid, ErrUnsupportedDimension, ErrDimensionMismatch,
// ErrClosed.
func (e *Engine) CreateInterpolator(grid [][]float64, functions [][]float64, opts ...interp.Option) (Handle, error) {
	if e.closed.Load() {
		return 0, ErrClosed
	}

	ip, err := interp.Build(grid, functions, opts...)
	if err != nil {
		cause := failureCause(err)
		e.reg.Metrics().RecordBuildFailure(cause)
		e.log.Warn("interpolator rejected",
			slog.String("cause", cause),
			slog.Int("dims", len(grid)),
			slog.Int("functions", len(functions)),
			slog.Any("err", err))
		return 0, err
	}

	h, err := e.reg.Register(ip)
	if err != nil {
		return 0, err
	}

	info := ip.Info()
	e.log.Debug("interpolator created",
		slog.Int64("handle", int64(h)),
		slog.String("name", info.Name),
		slog.String("shape", ip.Grid().Shape()),
		slog.Int("nodes", info.Nodes),
		slog.Int("functions", info.Functions))

	return h, nil
}

// Interpolate evaluates the table behind h at point.
// closedRange=true clamps out-of-range coordinates to the grid; false
// extrapolates linearly from the boundary.
// Errors: ErrNotFound, ErrDimensionMismatch, ErrInvalidPoint, ErrClosed.
func (e *Engine) Interpolate(h Handle, point []float64, closedRange bool) ([]float64, error) {
	return e.reg.Interpolate(h, point, closedRange)
}

// Lookup is Interpolate with the engine's default boundary policy
// (open range unless configured otherwise).
func (e *Engine) Lookup(h Handle, point []float64) ([]float64, error) {
	return e.reg.Interpolate(h, point, e.defaultClosed)
}

// Describe returns diagnostics for h.
func (e *Engine) Describe(h Handle) (interp.Info, error) {
	ip, err := e.reg.Lookup(h)
	if err != nil {
		return interp.Info{}, err
	}
	return ip.Info(), nil
}

// Len returns the number of live interpolators.
func (e *Engine) Len() int {
	return e.reg.Len()
}

// Handles lists live handles in creation order.
func (e *Engine) Handles() []Handle {
	return e.reg.Handles()
}

// Close releases every interpolator and unregisters the engine's metrics.
// Further calls fail with ErrClosed.
// Close is idempotent.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	live := e.reg.Len()
	if err := e.reg.Close(); err != nil {
		return err
	}
	e.log.Info("engine closed", slog.Int("released", live))
	return nil
}

// failureCause classifies a construction error for metrics and logs.
func failureCause(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedDimension):
		return registry.CauseUnsupportedDimension
	case errors.Is(err, ErrDimensionMismatch):
		return registry.CauseDimensionMismatch
	case errors.Is(err, ErrInvalidGrid):
		return registry.CauseInvalidGrid
	default:
		return registry.CauseOther
	}
}
