package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/trajfilter"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trajfilter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trajfilter version %s\n", strings.TrimSpace(trajfilter.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
