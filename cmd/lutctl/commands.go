package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lutgrid/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

var errMetricsDisabled = errors.New("lutctl: metrics are disabled in the configuration")

func newCheckCmd(a *app) *cobra.Command {
	var tablePath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a table document and print its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.newEngine(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer eng.Close()

			h, _, err := a.load(eng, tablePath)
			if err != nil {
				return err
			}
			info, err := eng.Describe(h)
			if err != nil {
				return err
			}

			sizes := make([]string, len(info.Sizes))
			for i, n := range info.Sizes {
				sizes[i] = strconv.Itoa(n)
			}
			w := cmd.OutOrStdout()
			if info.Name != "" {
				fmt.Fprintf(w, "name: %s\n", info.Name)
			}
			fmt.Fprintf(w, "dims: %d\n", info.Dims)
			fmt.Fprintf(w, "sizes: %s\n", strings.Join(sizes, "x"))
			fmt.Fprintf(w, "nodes: %d\n", info.Nodes)
			fmt.Fprintf(w, "functions: %d\n", info.Functions)
			return nil
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "table document (YAML)")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	var (
		tablePath string
		point     []float64
		closed    bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate every function of a table at one point",
		Long: `Evaluate every function of a table at one point and print one value per line.

Without --closed the configured default_closed_range policy applies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.newEngine(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer eng.Close()

			h, _, err := a.load(eng, tablePath)
			if err != nil {
				return err
			}
			vals, err := evaluate(eng, h, point, closed, cmd.Flags().Changed("closed"))
			if err != nil {
				return err
			}
			return printValues(cmd.OutOrStdout(), vals)
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "table document (YAML)")
	cmd.Flags().Float64SliceVarP(&point, "point", "p", nil, "query point, one coordinate per dimension")
	cmd.Flags().BoolVar(&closed, "closed", false, "clamp out-of-range coordinates instead of extrapolating")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("point")
	return cmd
}

func newMetricsCmd(a *app) *cobra.Command {
	var (
		tablePath string
		point     []float64
		closed    bool
	)
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Build a table, optionally evaluate it, and dump the registry metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.Metrics.Enabled {
				return errMetricsDisabled
			}
			reg := prometheus.NewRegistry()
			eng, err := a.newEngine(reg)
			if err != nil {
				return err
			}
			defer eng.Close()

			h, _, err := a.load(eng, tablePath)
			if err != nil {
				return err
			}
			if len(point) > 0 {
				if _, err := evaluate(eng, h, point, closed, cmd.Flags().Changed("closed")); err != nil {
					return err
				}
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "table document (YAML)")
	cmd.Flags().Float64SliceVarP(&point, "point", "p", nil, "optional query point")
	cmd.Flags().BoolVar(&closed, "closed", false, "clamp out-of-range coordinates instead of extrapolating")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

// evaluate applies an explicit --closed when given, else the engine default.
func evaluate(eng *engine.Engine, h engine.Handle, point []float64, closed, explicit bool) ([]float64, error) {
	if explicit {
		return eng.Interpolate(h, point, closed)
	}
	return eng.Lookup(h, point)
}

func printValues(w io.Writer, vals []float64) error {
	for _, v := range vals {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}
