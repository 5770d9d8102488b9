package main

import (
	"context"

	"github.com/aretw0/puzzlebox/internal/cli"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Solve every puzzle listed in a manifest",
	Long:  `Reads a YAML (or .json) manifest of runs and solves them in order, stopping at the first failure.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSignals(func(ctx context.Context) error {
			return cli.Batch(ctx, globalOptions(cmd), args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
