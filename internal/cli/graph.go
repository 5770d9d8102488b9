package cli

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/puzzlebox/internal/presentation/graph"
	"github.com/aretw0/puzzlebox/pkg/assembunny"
)

// GraphOptions configures the graph command.
type GraphOptions struct {
	// Hot marks the N most executed instructions; 0 skips execution.
	Hot int
	// Registers are the initial register values for the profiling run.
	Registers map[string]int
}

// Graph prints a Mermaid flowchart of a register machine program.
func Graph(ctx context.Context, opts Options, programPath string, gopts GraphOptions) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}

	src, err := readInput(programPath)
	if err != nil {
		return err
	}
	prog, err := assembunny.Parse(bytes.NewReader(src))
	if err != nil {
		return err
	}

	var overlay *graph.Overlay
	if gopts.Hot > 0 {
		var regs assembunny.Registers
		for name, v := range gopts.Registers {
			r, ok := assembunny.ParseRegister(name)
			if !ok {
				return fmt.Errorf("unknown register %q", name)
			}
			regs[r] = v
		}

		m := assembunny.NewMachine(a.logger)
		_, counts, err := m.Profile(ctx, prog, regs)
		if err != nil {
			return err
		}
		overlay = &graph.Overlay{Hot: hottest(prog, counts, gopts.Hot)}
		a.logger.Info("profiled program", "instructions", len(prog), "hot", overlay.Hot)
	}

	return a.printer.Text(graph.GenerateMermaid(prog, overlay))
}

// hottest returns the source lines of the n most executed instructions.
// Instructions that never ran are not included.
func hottest(prog assembunny.Program, counts []int, n int) []int {
	idx := make([]int, 0, len(prog))
	for pc, c := range counts {
		if c > 0 {
			idx = append(idx, pc)
		}
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		return counts[j] - counts[i]
	})
	if len(idx) > n {
		idx = idx[:n]
	}
	lines := make([]int, len(idx))
	for i, pc := range idx {
		lines[i] = prog[pc].Line
	}
	return lines
}
