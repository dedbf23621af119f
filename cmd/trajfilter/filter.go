package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/trajfilter/internal/cli"
	"github.com/spf13/cobra"
)

var filterOpts cli.FilterOptions

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Run a trajectory through a filter chain",
	Long: `Loads the chain description, configures every filter from the parameter source,
and writes the filtered trajectory. Filters that fail to configure are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		filterOpts.Debug = logger.Enabled(cmd.Context(), slog.LevelDebug)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.RunFilter(ctx, filterOpts, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterOpts.ChainPath, "chain", "", "Chain description file (YAML or JSON)")
	filterCmd.Flags().StringVar(&filterOpts.InPath, "in", "", "Input trajectory file")
	filterCmd.Flags().StringVar(&filterOpts.OutPath, "out", "", "Output trajectory file (default: stdout)")
	filterCmd.Flags().StringVar(&filterOpts.Format, "format", "yaml", "Stdout format when --out is not set (yaml, json)")
	filterCmd.Flags().StringVar(&filterOpts.ParamsPath, "params", "", "Parameter file, overridable with TRAJFILTER_* variables")
	filterCmd.Flags().StringVar(&filterOpts.RedisAddr, "redis-addr", "", "Read parameters from Redis at host:port")
	filterCmd.Flags().StringVar(&filterOpts.RedisPrefix, "redis-prefix", "", "Redis key prefix for parameters")
	filterCmd.Flags().BoolVar(&filterOpts.Metrics, "metrics", false, "Print filter metrics to stderr")
	_ = filterCmd.MarkFlagRequired("chain")
	_ = filterCmd.MarkFlagRequired("in")
	filterCmd.MarkFlagsMutuallyExclusive("params", "redis-addr")

	rootCmd.AddCommand(filterCmd)
}
