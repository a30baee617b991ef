package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexroute/internal/config"
	"github.com/gravitas-games/hexroute/internal/gamemap"
	"github.com/gravitas-games/hexroute/internal/metrics"
)

var (
	configPath  string
	wrapFlag    bool
	seedFlag    int64
	showMetrics bool

	// set up by loadMap before any subcommand runs
	cfg      *config.Config
	gm       *gamemap.GameMap
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "hexroute",
	Short: "Distance and path queries on a double-width hex grid",
	Long: `hexroute builds a hex grid from configuration and answers distance,
neighbour, movement and shortest-path queries against it.

Coordinates are given as ROW,COL in double-width form (row+col even).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadMap,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if showMetrics && registry != nil {
			printMetrics(cmd.OutOrStdout(), registry)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("HEXROUTE_CONFIG"), "path to YAML config (env HEXROUTE_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&wrapFlag, "wrap", false, "wrap movement around the grid edges")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "terrain seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print search metrics after the command")

	rootCmd.AddCommand(distanceCmd, pathCmd, neighboursCmd, moveCmd, rangeCmd, batchCmd, showCmd)
}

func loadMap(cmd *cobra.Command, _ []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("wrap") {
		cfg.Grid.Wrap = wrapFlag
	}
	if flags.Changed("seed") {
		cfg.Terrain.Seed = seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	registry = prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	gm, err = gamemap.New(cfg, rec, logger)
	if err != nil {
		return err
	}
	logger.Debug("map ready", "seed", gm.Seed, "hills", gm.HillCount(), "wrap", gm.Grid.Wrap())
	return nil
}

func printMetrics(w io.Writer, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		fmt.Fprintf(w, "metrics unavailable: %v\n", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}
