package main

import (
	"context"

	"github.com/aretw0/puzzlebox/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle> [input-file]",
	Short: "Solve a single puzzle",
	Long: `Runs one puzzle and prints its answer.
Puzzles that need input read input.txt from the current directory unless a file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var inputPath string
		if len(args) > 1 {
			inputPath = args[1]
		}
		params, _ := cmd.Flags().GetStringArray("param")

		return withSignals(func(ctx context.Context) error {
			return cli.Solve(ctx, globalOptions(cmd), args[0], inputPath, params)
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringArrayP("param", "p", nil, "Puzzle parameter as key=value (repeatable)")
}
