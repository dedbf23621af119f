package main

import (
	"github.com/aretw0/trajfilter/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <trajectory-file>",
	Short: "Check a trajectory file for consistency",
	Long:  `Parses the trajectory and reports arity mismatches, duplicate joints or out-of-order times.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunValidate(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
