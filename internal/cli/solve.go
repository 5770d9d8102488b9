package cli

import (
	"context"

	"github.com/aretw0/puzzlebox/internal/params"
)

// DefaultInput is read when a puzzle needs input and no file is given.
const DefaultInput = "input.txt"

// Solve runs one puzzle and prints its answer.
// inputPath may be empty; flagParams holds the raw --param key=value values.
func Solve(ctx context.Context, opts Options, name, inputPath string, flagParams []string) (err error) {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	p, err := a.box.Lookup(name)
	if err != nil {
		return err
	}
	raw, err := params.FromFlags(flagParams)
	if err != nil {
		return err
	}

	if inputPath == "" && p.NeedsInput {
		inputPath = DefaultInput
	}
	var input []byte
	if inputPath != "" {
		if input, err = readInput(inputPath); err != nil {
			return err
		}
		a.logger.Debug("input loaded", "path", inputPath, "bytes", len(input))
	}

	ans, err := a.box.Solve(ctx, name, input, raw)
	if err != nil {
		return err
	}
	return a.answers.Answer(ans)
}
