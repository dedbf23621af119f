package main

import (
	"github.com/aretw0/trajfilter/internal/cli"
	"github.com/aretw0/trajfilter/pkg/registry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered filter types",
	Run: func(cmd *cobra.Command, args []string) {
		cli.ListTypes(registry.Default, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
