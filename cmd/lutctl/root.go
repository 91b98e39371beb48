package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lutgrid/config"
	"github.com/katalvlaran/lutgrid/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "lutctl",
		Short:        "Build and query multilinear lookup tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		newCheckCmd(a),
		newEvalCmd(a),
		newMetricsCmd(a),
	)
	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	a.cfg = cfg
	a.logger = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// newEngine returns an engine configured from a.cfg. Metrics, when enabled,
// are registered on reg.
func (a *app) newEngine(reg prometheus.Registerer) (*engine.Engine, error) {
	opts := []engine.Option{engine.WithLogger(a.logger)}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, engine.WithMetrics(reg))
	}
	return engine.FromConfig(a.cfg, opts...)
}

// load reads the table document at path and registers it on eng.
func (a *app) load(eng *engine.Engine, path string) (engine.Handle, *tableDoc, error) {
	doc, err := loadTable(path)
	if err != nil {
		return 0, nil, err
	}
	h, err := eng.CreateInterpolator(doc.Grid, doc.Functions, doc.options()...)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, doc, nil
}
