// Package storage parses grid storage-node usage reports and finds node pairs whose
// data could be moved from one node onto another.
package storage

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

// Pos is a node's position in the grid.
type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("x%d-y%d", p.X, p.Y)
}

func comparePos(a, b Pos) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Node is one line of the usage report. Sizes are in terabytes.
// UseFraction is Use% / 100 as reported; it is informational only.
type Node struct {
	Name        string
	Pos         Pos
	Size        int
	Used        int
	Avail       int
	UseFraction float64
}

// Pair is an ordered pair of nodes where A's data fits into B's free space.
type Pair struct {
	A, B Pos
}

// ParseNode parses a line such as
//
//	/dev/grid/node-x0-y0   10T    8T     2T   80%
func ParseNode(line string) (Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Node{}, fmt.Errorf("%w: %q: want 5 fields, got %d", domain.ErrMalformedNode, line, len(fields))
	}

	pos, err := parsePos(fields[0])
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q: %v", domain.ErrMalformedNode, line, err)
	}

	var sizes [3]int
	for i, f := range fields[1:4] {
		n, err := parseUnit(f, "T")
		if err != nil {
			return Node{}, fmt.Errorf("%w: %q: %v", domain.ErrMalformedNode, line, err)
		}
		sizes[i] = n
	}

	pct, ok := strings.CutSuffix(fields[4], "%")
	if !ok {
		return Node{}, fmt.Errorf("%w: %q: use %q lacks %%", domain.ErrMalformedNode, line, fields[4])
	}
	use, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q: %v", domain.ErrMalformedNode, line, err)
	}

	return Node{
		Name:        fields[0],
		Pos:         pos,
		Size:        sizes[0],
		Used:        sizes[1],
		Avail:       sizes[2],
		UseFraction: use / 100,
	}, nil
}

// parsePos extracts the coordinates from a name like "/dev/grid/node-x3-y11".
func parsePos(name string) (Pos, error) {
	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return Pos{}, fmt.Errorf("name %q has no coordinates", name)
	}
	xs, okX := strings.CutPrefix(parts[len(parts)-2], "x")
	ys, okY := strings.CutPrefix(parts[len(parts)-1], "y")
	if !okX || !okY {
		return Pos{}, fmt.Errorf("name %q has no coordinates", name)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Pos{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Pos{}, err
	}
	return Pos{X: x, Y: y}, nil
}

func parseUnit(field, unit string) (int, error) {
	num, ok := strings.CutSuffix(field, unit)
	if !ok {
		return 0, fmt.Errorf("size %q lacks unit %s", field, unit)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", field)
	}
	return n, nil
}

// isHeader reports whether line is part of the report preamble, i.e. the shell
// prompt echoing the df command or the column header row.
func isHeader(line string) bool {
	return strings.HasPrefix(line, "Filesystem") || strings.Contains(line, "# df")
}

// ParseNodes reads a usage report, one node per line. Blank lines and the header
// lines before the first record are skipped.
func ParseNodes(r io.Reader) (map[Pos]Node, error) {
	nodes := make(map[Pos]Node)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(nodes) == 0 && isHeader(line) {
			continue
		}
		n, err := ParseNode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if prev, ok := nodes[n.Pos]; ok {
			return nil, fmt.Errorf("line %d: %w: %s and %s", lineNo, domain.ErrDuplicateNode, prev.Name, n.Name)
		}
		nodes[n.Pos] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// Viable reports whether a's data could move onto b.
func Viable(a, b Node) bool {
	return a.Pos != b.Pos && a.Used > 0 && a.Used < b.Avail
}

// ViablePairs returns every ordered viable pair, sorted by A then B.
func ViablePairs(nodes map[Pos]Node) []Pair {
	var pairs []Pair
	for _, a := range nodes {
		for _, b := range nodes {
			if Viable(a, b) {
				pairs = append(pairs, Pair{A: a.Pos, B: b.Pos})
			}
		}
	}
	slices.SortFunc(pairs, func(p, q Pair) int {
		if c := comparePos(p.A, q.A); c != 0 {
			return c
		}
		return comparePos(p.B, q.B)
	})
	return pairs
}

// CountViablePairs counts the ordered viable pairs without collecting them.
func CountViablePairs(nodes map[Pos]Node) int {
	count := 0
	for _, a := range nodes {
		if a.Used == 0 {
			continue
		}
		for _, b := range nodes {
			if Viable(a, b) {
				count++
			}
		}
	}
	return count
}
