// Package visualizer renders grids for terminal output.
package visualizer

import (
	"fmt"
	"io"
	"strings"

	"sudoku_engine/internal/core"
)

// Print writes grid as a 9x9 board with box-drawing borders. Empty cells
// render as dots.
func Print(w io.Writer, grid core.DigitGrid) {
	printHorizontalBorder(w)
	for y := uint8(0); y < 9; y++ {
		fmt.Fprint(w, "│ ")
		for x := uint8(0); x < 9; x++ {
			if d, ok := grid.Get(core.PositionAt(x, y)); ok {
				fmt.Fprintf(w, "%d ", d.Value())
			} else {
				fmt.Fprint(w, ". ")
			}
			if (x+1)%3 == 0 && x < 8 {
				fmt.Fprint(w, "│ ")
			}
		}
		fmt.Fprintln(w, "│")
		if (y+1)%3 == 0 && y < 8 {
			printHorizontalBorder(w)
		}
	}
}

// PrintCandidates writes the full candidate state of grid: each cell shows
// its remaining candidates, decided cells show a single digit.
func PrintCandidates(w io.Writer, grid *core.CandidateGrid) {
	// Widest cell is an undecided one with all nine candidates.
	width := 0
	cells := make([]string, 81)
	for i, pos := range core.Positions {
		var b strings.Builder
		for _, d := range grid.CandidatesAt(pos).Values() {
			fmt.Fprintf(&b, "%d", d.Value())
		}
		cells[i] = b.String()
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	for y := 0; y < 9; y++ {
		fmt.Fprint(w, "│ ")
		for x := 0; x < 9; x++ {
			fmt.Fprintf(w, "%-*s ", width, cells[y*9+x])
			if (x+1)%3 == 0 && x < 8 {
				fmt.Fprint(w, "│ ")
			}
		}
		fmt.Fprintln(w, "│")
	}
}

func printHorizontalBorder(w io.Writer) {
	fmt.Fprint(w, "├")
	for x := 0; x < 9; x++ {
		fmt.Fprint(w, strings.Repeat("─", 2))
		if (x+1)%3 == 0 && x < 8 {
			fmt.Fprint(w, "┼")
		}
	}
	fmt.Fprintln(w, "┤")
}
