package main

import (
	"fmt"

	"github.com/aretw0/puzzlebox"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of puzzlebox",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "puzzlebox version %s\n", puzzlebox.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
