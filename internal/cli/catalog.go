package cli

import (
	"strings"

	"github.com/aretw0/puzzlebox/internal/presentation/tui"
)

// List prints the name and title of every puzzle.
func List(opts Options) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	for _, p := range a.box.Puzzles() {
		if err := a.printer.Entry(p.Name, p.Title); err != nil {
			return err
		}
	}
	return nil
}

// Describe prints a puzzle's description, rendered when stdout is a terminal.
func Describe(opts Options, name string) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	desc, err := a.box.Describe(name)
	if err != nil {
		return err
	}

	render := tui.NewRenderer(a.printer.Styled())
	out, err := render(desc)
	if err != nil {
		a.logger.Warn("markdown rendering failed", "error", err)
		out = desc
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return a.printer.Text(out)
}
