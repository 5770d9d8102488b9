package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

// SolveFunc defines the signature for a puzzle implementation.
// It receives the raw puzzle input and a map of parameters, and returns the answer or an error.
type SolveFunc func(ctx context.Context, input []byte, params map[string]any) (domain.Answer, error)

// Puzzle describes a registered solver.
type Puzzle struct {
	// Name is the identifier used on the command line.
	Name string
	// Title is a one-line summary.
	Title string
	// Description is a markdown explanation of the puzzle.
	Description string
	// NeedsInput is false for puzzles whose data is built in.
	NeedsInput bool
	// Solve runs the puzzle.
	Solve SolveFunc
}

// Registry manages the available puzzles.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[string]Puzzle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[string]Puzzle),
	}
}

// Register adds a puzzle to the registry.
// If a puzzle with the same name exists, it is overwritten.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.Name] = p
}

// Lookup returns the puzzle registered under name.
func (r *Registry) Lookup(name string) (Puzzle, error) {
	r.mu.RLock()
	p, ok := r.puzzles[name]
	r.mu.RUnlock()

	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", domain.ErrUnknownPuzzle, name)
	}
	return p, nil
}

// List returns all puzzles sorted by name.
func (r *Registry) List() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b Puzzle) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}

// Solve looks up a puzzle by name and executes it.
// Returns an error if the puzzle is not found.
func (r *Registry) Solve(ctx context.Context, name string, input []byte, params map[string]any) (domain.Answer, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return domain.Answer{}, err
	}
	return p.Solve(ctx, input, params)
}
