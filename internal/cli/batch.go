package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/puzzlebox/internal/manifest"
)

// Batch runs every entry of a manifest in order, stopping at the first failure.
func Batch(ctx context.Context, opts Options, manifestPath string) (err error) {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	a.logger.Info("batch loaded", "path", manifestPath, "runs", len(m.Runs))

	for i, run := range m.Runs {
		p, err := a.box.Lookup(run.Puzzle)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		if run.Input == "" && p.NeedsInput {
			return fmt.Errorf("run %d: %s needs an input file", i+1, run.Puzzle)
		}

		var input []byte
		if run.Input != "" {
			if input, err = readInput(run.Input); err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
		}

		ans, err := a.box.Solve(ctx, run.Puzzle, input, run.Params)
		if err != nil {
			return fmt.Errorf("run %d (%s): %w", i+1, run.Puzzle, err)
		}
		if !a.opts.JSON {
			if err := a.printer.Section(run.Puzzle); err != nil {
				return err
			}
		}
		if err := a.answers.Answer(ans); err != nil {
			return err
		}
	}
	return nil
}
