package domain

import "strings"

// Part is one line of a puzzle answer.
// An empty Label means the value is printed on its own.
type Part struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// String renders the part the way it is printed on stdout.
func (p Part) String() string {
	if p.Label == "" {
		return p.Value
	}
	return p.Label + ": " + p.Value
}

// Answer is the result of solving a puzzle.
type Answer struct {
	Puzzle string `json:"puzzle" yaml:"puzzle"`
	Parts  []Part `json:"parts" yaml:"parts"`
}

// Single builds an answer with one unlabelled part.
func Single(puzzle, value string) Answer {
	return Answer{Puzzle: puzzle, Parts: []Part{{Value: value}}}
}

// Lines returns the printable lines of the answer, one per part.
func (a Answer) Lines() []string {
	lines := make([]string, len(a.Parts))
	for i, p := range a.Parts {
		lines[i] = p.String()
	}
	return lines
}

// String joins the answer lines with newlines.
func (a Answer) String() string {
	return strings.Join(a.Lines(), "\n")
}
