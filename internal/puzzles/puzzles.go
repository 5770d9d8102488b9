// Package puzzles binds the solver packages to the registry: it parses raw input,
// decodes parameters and shapes each result into a domain.Answer.
package puzzles

import (
	"embed"
	"log/slog"
	"strconv"

	"github.com/aretw0/puzzlebox/pkg/registry"
)

//go:embed descriptions/*.md
var descriptions embed.FS

func description(name string) string {
	b, err := descriptions.ReadFile("descriptions/" + name + ".md")
	if err != nil {
		return ""
	}
	return string(b)
}

func partLabel(i int) string {
	return "part " + strconv.Itoa(i+1)
}

// Register adds every built-in puzzle to r.
// logger receives solver traces; it may be nil.
func Register(r *registry.Registry, logger *slog.Logger) {
	r.Register(movementPuzzle())
	r.Register(checksumPuzzle())
	r.Register(viablePuzzle())
	r.Register(assembunnyPuzzle(logger))
}
