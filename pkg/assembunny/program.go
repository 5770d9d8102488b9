package assembunny

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

// Register names one of the four machine registers.
type Register int

const (
	A Register = iota
	B
	C
	D
)

// NumRegisters is the number of machine registers.
const NumRegisters = 4

func (r Register) String() string {
	return string(rune('a' + int(r)))
}

// ParseRegister maps "a".."d" to a Register.
func ParseRegister(s string) (Register, bool) {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'd' {
		return 0, false
	}
	return Register(s[0] - 'a'), true
}

// Op is an instruction opcode.
type Op string

const (
	OpCpy Op = "cpy"
	OpInc Op = "inc"
	OpDec Op = "dec"
	OpJnz Op = "jnz"
)

// arity is the number of operands each opcode takes.
var arity = map[Op]int{
	OpCpy: 2,
	OpInc: 1,
	OpDec: 1,
	OpJnz: 2,
}

// Arg is an operand: either a register or a literal.
type Arg struct {
	IsReg   bool
	Reg     Register
	Literal int
}

func (a Arg) String() string {
	if a.IsReg {
		return a.Reg.String()
	}
	return strconv.Itoa(a.Literal)
}

func parseArg(s string) (Arg, error) {
	if r, ok := ParseRegister(s); ok {
		return Arg{IsReg: true, Reg: r}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Arg{}, fmt.Errorf("operand %q is neither a register nor an integer", s)
	}
	return Arg{Literal: n}, nil
}

// Instruction is one decoded line of a program.
// Line is the 1-based source line it came from.
type Instruction struct {
	Line int
	Op   Op
	X    Arg
	Y    Arg
}

func (in Instruction) String() string {
	if arity[in.Op] == 1 {
		return fmt.Sprintf("%s %s", in.Op, in.X)
	}
	return fmt.Sprintf("%s %s %s", in.Op, in.X, in.Y)
}

// Program is a decoded instruction list.
type Program []Instruction

// ParseInstruction decodes a single source line.
func ParseInstruction(line int, text string) (Instruction, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Instruction{}, fmt.Errorf("%w: line %d: empty instruction", domain.ErrMalformedProgram, line)
	}
	op := Op(fields[0])
	want, ok := arity[op]
	if !ok {
		return Instruction{}, fmt.Errorf("%w: line %d: unknown op %q", domain.ErrMalformedProgram, line, fields[0])
	}
	if len(fields)-1 != want {
		return Instruction{}, fmt.Errorf("%w: line %d: %s takes %d operands, got %d", domain.ErrMalformedProgram, line, op, want, len(fields)-1)
	}

	in := Instruction{Line: line, Op: op}
	args := make([]Arg, want)
	for i, f := range fields[1:] {
		a, err := parseArg(f)
		if err != nil {
			return Instruction{}, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedProgram, line, err)
		}
		args[i] = a
	}
	in.X = args[0]
	if want == 2 {
		in.Y = args[1]
	}

	// Destinations must be registers.
	switch op {
	case OpCpy:
		if !in.Y.IsReg {
			return Instruction{}, fmt.Errorf("%w: line %d: cpy into literal %s", domain.ErrMalformedProgram, line, in.Y)
		}
	case OpInc, OpDec:
		if !in.X.IsReg {
			return Instruction{}, fmt.Errorf("%w: line %d: %s of literal %s", domain.ErrMalformedProgram, line, op, in.X)
		}
	}
	return in, nil
}

// Parse reads a program, one instruction per line. Blank lines are skipped.
func Parse(r io.Reader) (Program, error) {
	var prog Program
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		in, err := ParseInstruction(line, text)
		if err != nil {
			return nil, err
		}
		prog = append(prog, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}
