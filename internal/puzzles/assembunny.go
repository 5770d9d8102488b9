package puzzles

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aretw0/puzzlebox/internal/params"
	"github.com/aretw0/puzzlebox/pkg/assembunny"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/aretw0/puzzlebox/pkg/registry"
)

const assembunnyName = "assembunny"

// AssembunnyParams configures the register machine puzzle.
// Each entry of Runs holds the initial registers for one answer line.
type AssembunnyParams struct {
	Runs []map[string]int `mapstructure:"runs"`
}

func assembunnyPuzzle(logger *slog.Logger) registry.Puzzle {
	m := assembunny.NewMachine(logger)
	return registry.Puzzle{
		Name:        assembunnyName,
		Title:       "Value of register a after running a register machine program",
		Description: description(assembunnyName),
		NeedsInput:  true,
		Solve: func(ctx context.Context, input []byte, raw map[string]any) (domain.Answer, error) {
			return solveAssembunny(ctx, m, input, raw)
		},
	}
}

func solveAssembunny(ctx context.Context, m *assembunny.Machine, input []byte, raw map[string]any) (domain.Answer, error) {
	p := AssembunnyParams{
		Runs: []map[string]int{{}, {"c": 1}},
	}
	if err := params.Decode(raw, &p); err != nil {
		return domain.Answer{}, err
	}

	prog, err := assembunny.Parse(bytes.NewReader(input))
	if err != nil {
		return domain.Answer{}, err
	}

	ans := domain.Answer{Puzzle: assembunnyName}
	for i, init := range p.Runs {
		var regs assembunny.Registers
		for name, v := range init {
			r, ok := assembunny.ParseRegister(name)
			if !ok {
				return domain.Answer{}, fmt.Errorf("%w: unknown register %q", domain.ErrInvalidParams, name)
			}
			regs[r] = v
		}
		final, err := m.Run(ctx, prog, regs)
		if err != nil {
			return domain.Answer{}, err
		}
		ans.Parts = append(ans.Parts, domain.Part{Label: partLabel(i), Value: strconv.Itoa(final[assembunny.A])})
	}
	return ans, nil
}
