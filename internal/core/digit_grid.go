package core

import (
	"fmt"
	"strings"
)

// DigitGrid is a cell-centric 9x9 board: each position holds a digit or is
// empty. It represents puzzles (partially filled) and solutions (fully
// filled) and round-trips through the canonical 81-character string format.
//
// The struct is a comparable plain value; copying it by assignment is cheap.
type DigitGrid struct {
	// cells[p.Index()] is the digit at p, or 0 for an empty cell.
	cells [81]Digit
}

// ParseDigitGrid parses the canonical row-major form: 81 characters, '.', '0'
// or '_' for an empty cell and '1'-'9' for a filled one. Whitespace is
// ignored. It fails with ErrParse on any other rune or a wrong cell count.
func ParseDigitGrid(s string) (DigitGrid, error) {
	var g DigitGrid
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case i == 81:
			return DigitGrid{}, fmt.Errorf("%w: more than 81 cells", ErrParse)
		case r == '.' || r == '0' || r == '_':
			i++
		case r >= '1' && r <= '9':
			g.cells[i] = Digit(r - '0')
			i++
		default:
			return DigitGrid{}, fmt.Errorf("%w: invalid character %q", ErrParse, r)
		}
	}
	if i != 81 {
		return DigitGrid{}, fmt.Errorf("%w: expected 81 cells, got %d", ErrParse, i)
	}
	return g, nil
}

// Get returns the digit at pos and whether the cell is filled.
func (g *DigitGrid) Get(pos Position) (Digit, bool) {
	d := g.cells[pos.Index()]
	return d, d != 0
}

// Set fills pos with digit.
func (g *DigitGrid) Set(pos Position, digit Digit) {
	g.cells[pos.Index()] = digit
}

// Clear empties the cell at pos.
func (g *DigitGrid) Clear(pos Position) {
	g.cells[pos.Index()] = 0
}

// IsEmpty reports whether the cell at pos is empty.
func (g *DigitGrid) IsEmpty(pos Position) bool {
	return g.cells[pos.Index()] == 0
}

// FilledCount returns the number of filled cells.
func (g *DigitGrid) FilledCount() int {
	n := 0
	for _, d := range g.cells {
		if d != 0 {
			n++
		}
	}
	return n
}

// String formats the grid in the canonical 81-character form, '.' for empty
// cells.
func (g DigitGrid) String() string {
	var b strings.Builder
	b.Grow(81)
	for _, d := range g.cells {
		if d == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}

// StringRows formats the grid as nine newline-separated rows, for logs and
// error messages.
func (g DigitGrid) StringRows() string {
	s := g.String()
	var b strings.Builder
	b.Grow(90)
	for y := 0; y < 9; y++ {
		b.WriteString(s[y*9 : y*9+9])
		if y < 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
