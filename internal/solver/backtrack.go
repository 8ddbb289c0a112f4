package solver

import "sudoku_engine/internal/core"

// FindBestAssumption picks the undecided position to guess at next: the one
// with the fewest remaining candidates (minimum remaining values), ties
// broken by row-major scan order. The classification buckets cells by
// candidate count, so the pick is a scan of at most eight sets rather than
// 81 cells.
//
// The grid must be consistent and not fully decided; violating either is a
// caller bug and panics.
func FindBestAssumption(g *core.CandidateGrid) (core.Position, core.DigitSet) {
	cells := g.ClassifyCells(10)
	if !cells[0].IsEmpty() || cells[1].Len() == 81 {
		panic("solver: FindBestAssumption needs a consistent, unsolved grid")
	}
	for _, slot := range cells[2:] {
		if pos, ok := slot.First(); ok {
			return pos, g.CandidatesAt(pos)
		}
	}
	panic("solver: unsolved grid has no undecided cells")
}
