package solver

import "sudoku_engine/internal/core"

// Assumption is one guess made during search: a digit tried at a position.
type Assumption struct {
	Pos   core.Position
	Digit core.Digit
}

// BacktrackStats describes how a solution was reached: the deduction work,
// the guesses on the path to the solution, and how many branches the search
// had abandoned by the time the solution was yielded.
type BacktrackStats struct {
	Technique   *Stats
	Assumptions []Assumption
	Backtracks  int
}

// SolvedWithoutAssumptions reports whether deduction alone reached the
// solution.
func (s *BacktrackStats) SolvedWithoutAssumptions() bool {
	return len(s.Assumptions) == 0
}

func (s *BacktrackStats) clone() BacktrackStats {
	return BacktrackStats{
		Technique:   s.Technique.clone(),
		Assumptions: append([]Assumption(nil), s.Assumptions...),
		Backtracks:  s.Backtracks,
	}
}

// Solution is one complete, consistent assignment found by the search.
type Solution struct {
	Grid  core.DigitGrid
	Stats BacktrackStats
}

// BacktrackSolver combines deduction with depth-first guessing. Deduction
// runs to a fixed point; when it gets stuck the solver branches over the
// candidates of the best cell (FindBestAssumption) in increasing digit
// order. Each branch works on its own copy of the grid, so abandoning a
// contradicted branch needs no undo.
type BacktrackSolver struct {
	technique *TechniqueSolver
}

// NewBacktrackSolver returns a search solver deducing with technique.
func NewBacktrackSolver(technique *TechniqueSolver) *BacktrackSolver {
	return &BacktrackSolver{technique: technique}
}

// NewBacktrackSolverWithAll returns a search solver with every installed
// technique.
func NewBacktrackSolverWithAll() *BacktrackSolver {
	return NewBacktrackSolver(NewTechniqueSolverWithAll())
}

// NewPureBacktrackSolver returns a search solver with no techniques at all.
// Every cell is then filled by guessing; mainly useful as a baseline in
// tests.
func NewPureBacktrackSolver() *BacktrackSolver {
	return NewBacktrackSolver(NewTechniqueSolver(nil))
}

// Solve starts a search over every completion of grid and returns its lazy
// solution sequence. The grid is taken by value; the caller's copy is not
// touched. It fails with a contradiction error when the input grid is
// already inconsistent.
func (s *BacktrackSolver) Solve(grid core.CandidateGrid) (*Solutions, error) {
	stats := BacktrackStats{Technique: NewStats()}
	status, err := s.technique.SolveWithStats(&grid, stats.Technique)
	switch status {
	case StatusSolved:
		return &Solutions{
			solver: s,
			stack:  []searchState{{grid: grid, stats: stats, solved: true}},
		}, nil
	case StatusStuck:
		pos, digits := FindBestAssumption(&grid)
		return &Solutions{
			solver: s,
			stack:  []searchState{{grid: grid, stats: stats, pos: pos, digits: digits}},
		}, nil
	default:
		return nil, err
	}
}

// searchState is one suspended node of the search tree: a grid plus the
// branch digits not yet tried at pos. A solved state carries a complete grid
// awaiting yield.
type searchState struct {
	grid   core.CandidateGrid
	stats  BacktrackStats
	pos    core.Position
	digits core.DigitSet
	solved bool
}

// Solutions enumerates the solutions of one Solve call lazily: each Next
// resumes the depth-first search where the previous call left off. The
// sequence is finite (the search tree is), and abandoning it early simply
// stops pulling; branches hold no external resources.
type Solutions struct {
	solver     *BacktrackSolver
	stack      []searchState
	backtracks int
}

// Backtracks returns the number of branches abandoned so far across the whole
// search.
func (it *Solutions) Backtracks() int { return it.backtracks }

// Next returns the next solution, or false when the search space is
// exhausted.
func (it *Solutions) Next() (*Solution, bool) {
	for len(it.stack) > 0 {
		state := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if state.solved {
			return it.yield(state.grid, state.stats), true
		}

		digit, ok := state.digits.PopFirst()
		if !ok {
			continue
		}
		grid := state.grid
		stats := state.stats.clone()
		it.stack = append(it.stack, state)

		stats.Assumptions = append(stats.Assumptions, Assumption{Pos: state.pos, Digit: digit})
		grid.Place(state.pos, digit)
		status, _ := it.solver.technique.SolveWithStats(&grid, stats.Technique)
		switch status {
		case StatusSolved:
			return it.yield(grid, stats), true
		case StatusStuck:
			pos, digits := FindBestAssumption(&grid)
			it.stack = append(it.stack, searchState{grid: grid, stats: stats, pos: pos, digits: digits})
		default:
			// Contradicted guess; the branch dies with its clone.
			it.backtracks++
		}
	}
	return nil, false
}

func (it *Solutions) yield(grid core.CandidateGrid, stats BacktrackStats) *Solution {
	stats.Backtracks = it.backtracks
	dg, err := grid.ToDigitGrid()
	if err != nil {
		panic("solver: solved grid failed digit conversion: " + err.Error())
	}
	return &Solution{Grid: dg, Stats: stats}
}
