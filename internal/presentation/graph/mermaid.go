package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/assembunny"
)

// Overlay marks instructions to highlight on the graph, by 1-based source line.
type Overlay struct {
	Hot []int
}

const (
	startID = "start"
	haltID  = "halt"
)

func nodeID(pc int) string {
	return fmt.Sprintf("i%d", pc)
}

// target resolves the node a transfer to pc lands on.
func target(prog assembunny.Program, pc int) string {
	if pc < 0 || pc >= len(prog) {
		return haltID
	}
	return nodeID(pc)
}

// GenerateMermaid produces a Mermaid flowchart of a program's control flow.
// It applies semantic styling:
// - Start/Halt: ((Circle))
// - jnz: {Rhombus}
// - Default: [Rectangle]
// Jumps through a register cannot be resolved statically and are drawn as a
// dotted edge to a "?" node.
func GenerateMermaid(prog assembunny.Program, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", startID, startID))
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", haltID, haltID))
	sb.WriteString(fmt.Sprintf("    %s --> %s\n", startID, target(prog, 0)))

	dynamic := false
	for pc, in := range prog {
		id := nodeID(pc)
		label := fmt.Sprintf("%d: %s", in.Line, in)

		opener, closer := "[", "]"
		if in.Op == assembunny.OpJnz {
			opener, closer = "{", "}"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

		next := target(prog, pc+1)
		if in.Op != assembunny.OpJnz {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, next))
			continue
		}

		cond := in.X.String()
		switch {
		case !in.X.IsReg && in.X.Literal == 0:
			// Never taken.
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, next))
			continue
		case !in.X.IsReg:
			// Always taken: no fall-through edge.
		default:
			sb.WriteString(fmt.Sprintf("    %s -- \"%s == 0\" --> %s\n", id, cond, next))
		}

		taken := "jump"
		if in.X.IsReg {
			taken = cond + " != 0"
		}
		if in.Y.IsReg {
			dynamic = true
			sb.WriteString(fmt.Sprintf("    %s -. \"%s by %s\" .-> dyn\n", id, taken, in.Y))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", id, taken, target(prog, pc+in.Y.Literal)))
	}

	if dynamic {
		sb.WriteString("    dyn[/\"?\"/]\n")
	}

	// Apply Overlay Styles
	if overlay != nil && len(overlay.Hot) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef hot fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		byLine := make(map[int]int, len(prog))
		for pc, in := range prog {
			byLine[in.Line] = pc
		}
		seen := make(map[int]bool)
		for _, line := range overlay.Hot {
			pc, ok := byLine[line]
			if !ok || seen[pc] {
				continue
			}
			seen[pc] = true
			sb.WriteString(fmt.Sprintf("    class %s hot;\n", nodeID(pc)))
		}
	}

	return sb.String()
}
