// Package solver implements human-technique deduction and backtracking
// search over a core.CandidateGrid.
//
// TechniqueSolver applies only logical deductions and stops when stuck, so it
// doubles as a "solvable by logic alone" oracle. BacktrackSolver adds guessing
// on top and enumerates every solution.
package solver

import "sudoku_engine/internal/core"

// Technique is a single unit of human-style deduction. Apply inspects the
// grid, optionally mutates it, and reports whether it changed anything. It
// fails with a contradiction error when its own reasoning exposes an
// inconsistent state.
type Technique interface {
	Name() string
	Apply(g *core.CandidateGrid) (bool, error)
}

// AllTechniques returns the installed techniques ordered from easiest to
// hardest. TechniqueSolver relies on this order: any progress restarts the
// scan at the front.
func AllTechniques() []Technique {
	return []Technique{
		NakedSingle{},
		HiddenSingle{},
	}
}
