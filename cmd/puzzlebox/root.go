package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/puzzlebox/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "puzzlebox solves small deterministic puzzles",
	Long: `puzzlebox bundles a handful of unrelated puzzle solvers behind one command line.
Each solver reads a small text input and prints its answer on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("json", false, "Print answers as JSON lines")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file after the command")
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	logLevel, _ := cmd.Flags().GetString("log-level")
	noColor, _ := cmd.Flags().GetBool("no-color")
	jsonMode, _ := cmd.Flags().GetBool("json")
	metricsOut, _ := cmd.Flags().GetString("metrics-out")
	return cli.Options{
		LogLevel:   logLevel,
		NoColor:    noColor,
		JSON:       jsonMode,
		MetricsOut: metricsOut,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

// withSignals runs fn under a context cancelled by SIGINT or SIGTERM.
func withSignals(fn func(ctx context.Context) error) error {
	sigCtx := cli.NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err := fn(sigCtx)
	if err != nil {
		if sig := sigCtx.Signal(); sig != nil {
			return fmt.Errorf("interrupted by %v: %w", sig, err)
		}
	}
	return err
}
