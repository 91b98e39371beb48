// SPDX-License-Identifier: MIT

package engine

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes metric names when metrics are enabled.
const DefaultNamespace = "lutgrid"

const (
	panicLoggerNil     = "engine: WithLogger: logger must not be nil"
	panicRegistererNil = "engine: WithMetrics: registerer must not be nil"
	panicNamespace     = "engine: WithNamespace: namespace must not be empty"
)

// Option configures an Engine.
type Option func(*options)

// options is the resolved configuration of New.
type options struct {
	logger        *slog.Logger
	registerer    prometheus.Registerer
	namespace     string
	defaultClosed bool
}

func defaultOptions() options {
	return options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		namespace: DefaultNamespace,
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics registers registry metrics on reg, labelled with the engine ID.
// Panics on nil.
func WithMetrics(reg prometheus.Registerer) Option {
	if reg == nil {
		panic(panicRegistererNil)
	}
	return func(o *options) { o.registerer = reg }
}

// WithNamespace overrides DefaultNamespace. Panics on "".
func WithNamespace(ns string) Option {
	if ns == "" {
		panic(panicNamespace)
	}
	return func(o *options) { o.namespace = ns }
}

// WithDefaultClosedRange sets the boundary policy used by Lookup.
func WithDefaultClosedRange(closed bool) Option {
	return func(o *options) { o.defaultClosed = closed }
}
