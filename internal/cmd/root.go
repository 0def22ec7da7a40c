// Package cmd implements the floodsim command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vnykmshr/floodgate/internal/config"
	"github.com/vnykmshr/floodgate/internal/observability"
	"github.com/vnykmshr/floodgate/internal/report"
	"github.com/vnykmshr/floodgate/pkg/metrics"
	"github.com/vnykmshr/floodgate/pkg/simulation"
)

// Execute runs floodsim with the process arguments. Interrupts cancel the
// runs in progress.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the floodsim command writing reports to stdout and logs
// to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "floodsim [budget] [reset-hours] [bad-actors]",
		Short: "Simulate advertisement flooding under a per-originator usage budget",
		Long: `floodsim estimates how much a fixed-window usage budget per originator
reduces advertisement traffic in a mesh of repeaters.

Each run compares the transmissions that actually happen with the ones that
would happen without any budget. The three optional positional arguments set
the budget, the reset period in hours and the number of bad actors.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				if err := config.ReadFile(v, cfgFile); err != nil {
					return err
				}
			}

			logger := observability.NewCLILogger(stderr, v.GetBool(config.KeyVerbose))
			defer func() { _ = logger.Sync() }()

			settings, err := config.Load(v, args, logger)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(settings.Format)
			if err != nil {
				return err
			}

			return run(cmd.Context(), stdout, settings, format, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, config.KeyVerbose, "v", false, "verbose output (sets log level to debug)")
	config.RegisterFlags(rootCmd.Flags())

	_ = v.BindPFlags(rootCmd.Flags())
	_ = v.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup(config.KeyVerbose))

	rootCmd.AddCommand(newVersionCmd(stdout))
	return rootCmd
}

func run(ctx context.Context, stdout io.Writer, settings *config.Settings, format report.Format, logger *zap.Logger) error {
	opts := []simulation.Option{simulation.WithLogger(logger)}

	var gatherer *prometheus.Registry
	if settings.Metrics {
		gatherer = prometheus.NewRegistry()
		opts = append(opts, simulation.WithMetrics(metrics.NewRegistry(gatherer)))
	}

	sim, err := simulation.New(settings.Simulation, opts...)
	if err != nil {
		return err
	}

	cfg := sim.Config()
	logger.Debug("Running simulation",
		zap.Int("runs", cfg.Runs),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("budget", cfg.Capacity),
		zap.Int("bad_actors", cfg.BadActors))

	reports, err := sim.RunAll(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := report.Write(stdout, format, report.NewDocument(cfg, reports)); err != nil {
		return err
	}
	if gatherer != nil {
		return report.WriteMetrics(stdout, gatherer)
	}
	return nil
}
