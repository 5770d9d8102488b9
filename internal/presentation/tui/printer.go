package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes answers and listings to the user.
// Colour is applied only to labels and headings, never to the values themselves.
type Printer struct {
	w      io.Writer
	out    *termenv.Output
	styled bool
}

// NewPrinter creates a printer writing to w. Styling is enabled when color is
// true and w is a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	styled := color && IsTerminal(w)
	return &Printer{
		w:      w,
		out:    termenv.NewOutput(w),
		styled: styled,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether the printer emits escape sequences.
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) label(s string) string {
	if !p.styled {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color("#a78bfa")).String()
}

func (p *Printer) heading(s string) string {
	if !p.styled {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color("#818cf8")).Bold().String()
}

// Answer prints one line per part: the bare value, or "label: value".
func (p *Printer) Answer(a domain.Answer) error {
	for _, part := range a.Parts {
		var err error
		if part.Label == "" {
			_, err = fmt.Fprintln(p.w, part.Value)
		} else {
			_, err = fmt.Fprintf(p.w, "%s %s\n", p.label(part.Label+":"), part.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Section prints a "== name" separator used between batch runs.
func (p *Printer) Section(name string) error {
	_, err := fmt.Fprintln(p.w, p.heading("== "+name))
	return err
}

// Entry prints a name/summary row of a listing.
func (p *Printer) Entry(name, summary string) error {
	_, err := fmt.Fprintf(p.w, "%s  %s\n", p.heading(fmt.Sprintf("%-12s", name)), summary)
	return err
}

// Text prints s as-is.
func (p *Printer) Text(s string) error {
	_, err := fmt.Fprint(p.w, s)
	return err
}
