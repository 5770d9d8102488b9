package movement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

// Heading is a compass direction, always in the range [0, 4).
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// Turn is the rotation applied before moving.
type Turn int

const (
	Right Turn = iota
	Left
)

// delta is the heading change of the turn, already taken modulo 4.
func (t Turn) delta() Heading {
	if t == Left {
		return 3
	}
	return 1
}

func (t Turn) String() string {
	if t == Left {
		return "L"
	}
	return "R"
}

// Instruction is a single "<R|L><distance>" step.
type Instruction struct {
	Turn     Turn
	Distance int
}

func (i Instruction) String() string {
	return i.Turn.String() + strconv.Itoa(i.Distance)
}

// State is the walker's position and heading.
type State struct {
	Heading Heading
	X, Y    int
}

// Movement along each heading: North/South change Y, East/West change X.
var (
	onX  = [4]bool{false, true, false, true}
	sign = [4]int{1, 1, -1, -1}
)

// Apply turns and then moves along the new heading.
func (s State) Apply(in Instruction) State {
	s.Heading = (s.Heading + in.Turn.delta()) % 4
	step := sign[s.Heading] * in.Distance
	if onX[s.Heading] {
		s.X += step
	} else {
		s.Y += step
	}
	return s
}

// Distance is the Manhattan distance from the origin.
func (s State) Distance() int {
	return abs(s.X) + abs(s.Y)
}

// Track folds the instructions over the initial state (origin, facing North).
func Track(instrs []Instruction) State {
	var s State
	for _, in := range instrs {
		s = s.Apply(in)
	}
	return s
}

// ParseInstruction parses a token such as "R12" or "L3".
func ParseInstruction(token string) (Instruction, error) {
	if len(token) < 2 {
		return Instruction{}, fmt.Errorf("%w: %q", domain.ErrMalformedInstruction, token)
	}
	var in Instruction
	switch token[0] {
	case 'R':
		in.Turn = Right
	case 'L':
		in.Turn = Left
	default:
		return Instruction{}, fmt.Errorf("%w: %q: unknown turn", domain.ErrMalformedInstruction, token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 0 {
		return Instruction{}, fmt.Errorf("%w: %q: bad distance", domain.ErrMalformedInstruction, token)
	}
	in.Distance = n
	return in, nil
}

// ParseInstructions parses a comma separated list such as "R2, L3".
// Surrounding whitespace (including a trailing newline) is ignored.
func ParseInstructions(text string) ([]Instruction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	tokens := strings.Split(text, ",")
	instrs := make([]Instruction, 0, len(tokens))
	for _, tok := range tokens {
		in, err := ParseInstruction(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, in)
	}
	return instrs, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
