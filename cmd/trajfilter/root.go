package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/trajfilter/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "trajfilter",
	Short:         "trajfilter post-processes planned joint trajectories",
	Long:          `trajfilter runs a chain of trajectory filters (resampling, point reduction) over planned joint trajectories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// loggerFor builds the stderr logger selected by --log-level.
func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
