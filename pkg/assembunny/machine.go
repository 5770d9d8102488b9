package assembunny

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 1 << 16

// Registers holds the values of a, b, c and d.
type Registers [NumRegisters]int

func (r Registers) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", Register(i), v)
	}
	return b.String()
}

// Machine executes programs. The zero value is usable and silent.
type Machine struct {
	logger *slog.Logger
}

// NewMachine creates a machine that traces execution to logger at debug level.
// A nil logger disables tracing.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{logger: logger}
}

func (m *Machine) log() *slog.Logger {
	if m.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m.logger
}

// Run executes prog starting from regs and returns the registers at halt.
// It returns ctx.Err() if the context is cancelled before the program halts.
func (m *Machine) Run(ctx context.Context, prog Program, regs Registers) (Registers, error) {
	return m.run(ctx, prog, regs, nil)
}

// Profile is Run that also counts how often each instruction executed,
// indexed like prog.
func (m *Machine) Profile(ctx context.Context, prog Program, regs Registers) (Registers, []int, error) {
	counts := make([]int, len(prog))
	final, err := m.run(ctx, prog, regs, counts)
	return final, counts, err
}

func (m *Machine) run(ctx context.Context, prog Program, regs Registers, counts []int) (Registers, error) {
	logger := m.log()
	trace := logger.Enabled(ctx, slog.LevelDebug)

	pc := 0
	steps := 0
	for pc >= 0 && pc < len(prog) {
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return regs, err
			}
		}

		in := prog[pc]
		if counts != nil {
			counts[pc]++
		}
		pc++
		switch in.Op {
		case OpCpy:
			regs[in.Y.Reg] = regs.value(in.X)
		case OpInc:
			regs[in.X.Reg]++
		case OpDec:
			regs[in.X.Reg]--
		case OpJnz:
			if regs.value(in.X) != 0 {
				pc += regs.value(in.Y) - 1
			}
		}

		if trace {
			logger.DebugContext(ctx, "executed", "line", in.Line, "instr", in.String(), "regs", regs.String())
		}
	}

	logger.DebugContext(ctx, "halted", "steps", steps, "regs", regs.String())
	return regs, nil
}

func (r *Registers) value(a Arg) int {
	if a.IsReg {
		return r[a.Reg]
	}
	return a.Literal
}
