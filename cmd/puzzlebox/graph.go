package main

import (
	"context"

	"github.com/aretw0/puzzlebox/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <program-file>",
	Short: "Export the control flow of a register machine program",
	Long: `Parses an assembunny program and outputs a Mermaid diagram (graph TD) of its control flow.
With --hot, the program is run first and its most executed instructions are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hot, _ := cmd.Flags().GetInt("hot")
		regs, _ := cmd.Flags().GetStringToInt("register")

		return withSignals(func(ctx context.Context) error {
			return cli.Graph(ctx, globalOptions(cmd), args[0], cli.GraphOptions{
				Hot:       hot,
				Registers: regs,
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Int("hot", 0, "Highlight the N most executed instructions")
	graphCmd.Flags().StringToIntP("register", "r", nil, "Initial register for the profiling run as name=value")
}
