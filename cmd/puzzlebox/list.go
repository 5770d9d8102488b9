package main

import (
	"github.com/aretw0/puzzlebox/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(globalOptions(cmd))
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <puzzle>",
	Short: "Explain a puzzle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Describe(globalOptions(cmd), args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(describeCmd)
}
