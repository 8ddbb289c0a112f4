// Package generator produces 9x9 Sudoku puzzles by the removal method: build
// a complete solved grid, then delete cells for as long as the puzzle stays
// solvable by deduction alone.
//
// Deduction-solvability is the uniqueness argument: a deductive solver never
// guesses, so if two completions existed some cell would be undetermined by
// logic and the solver would report stuck instead of solved. Every puzzle
// that survives the removal loop therefore has exactly one solution.
package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"sudoku_engine/internal/core"
	"sudoku_engine/internal/solver"
)

// GeneratedPuzzle is one generation result. Problem is always a
// sub-assignment of Solution, and rerunning the generator with Seed
// reproduces both byte for byte. The value is never mutated after creation.
type GeneratedPuzzle struct {
	Problem  core.DigitGrid
	Solution core.DigitGrid
	Seed     Seed
}

// PuzzleGenerator builds puzzles against a deductive solver. The solver's
// technique set decides which removals are accepted, so it bounds how hard
// the generated puzzles can get.
type PuzzleGenerator struct {
	solver *solver.TechniqueSolver
}

// New returns a generator verifying removals with s.
func New(s *solver.TechniqueSolver) *PuzzleGenerator {
	return &PuzzleGenerator{solver: s}
}

// Generate produces a puzzle from a fresh random seed.
func (g *PuzzleGenerator) Generate() *GeneratedPuzzle {
	return g.GenerateWithSeed(NewSeed())
}

// GenerateWithSeed produces the puzzle determined by seed. The call is pure:
// equal seeds yield identical puzzles across runs and versions.
func (g *PuzzleGenerator) GenerateWithSeed(seed Seed) *GeneratedPuzzle {
	start := time.Now()
	rng := rand.NewChaCha8(seed)
	solution := g.generateSolution(rng)
	problem := g.removeCells(rng, solution)
	logrus.WithFields(logrus.Fields{
		"seed":     seed,
		"clues":    problem.FilledCount(),
		"duration": time.Since(start),
	}).Debug("puzzle generated")
	return &GeneratedPuzzle{Problem: problem, Solution: solution, Seed: seed}
}

// generateSolution builds one complete valid grid: the first row is a random
// permutation, the rest of the top-left box takes the six unused digits in
// random order, and the remainder is filled by backtracking search guided by
// deduction so most cells never need a guess.
func (g *PuzzleGenerator) generateSolution(rng *rand.ChaCha8) core.DigitGrid {
	grid := core.NewCandidateGrid()

	topRow := core.Digits
	shuffle(rng, topRow[:])
	for x := uint8(0); x < 9; x++ {
		grid.Place(core.PositionAt(x, 0), topRow[x])
	}

	// topRow[:3] already occupies the first row of box 0; the other six
	// digits fill its remaining cells. They cannot collide with the first
	// row by column either, so any order is viable.
	var remaining [6]core.Digit
	copy(remaining[:], topRow[3:])
	shuffle(rng, remaining[:])
	for i := uint8(0); i < 6; i++ {
		grid.Place(core.PositionFromBox(0, i+3), remaining[i])
	}

	type fillState struct {
		grid   core.CandidateGrid
		pos    core.Position
		digits core.DigitSet
	}

	pos, digits := solver.FindBestAssumption(grid)
	stack := []fillState{{grid: *grid, pos: pos, digits: digits}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.digits.IsEmpty() {
			stack = stack[:len(stack)-1]
			continue
		}
		digit, _ := top.digits.PopNth(randIntN(rng, top.digits.Len()))
		next := top.grid
		next.Place(top.pos, digit)
		status, _, _ := g.solver.Solve(&next)
		switch status {
		case solver.StatusSolved:
			dg, err := next.ToDigitGrid()
			if err != nil {
				panic("generator: solved grid failed digit conversion: " + err.Error())
			}
			return dg
		case solver.StatusStuck:
			pos, digits := solver.FindBestAssumption(&next)
			stack = append(stack, fillState{grid: next, pos: pos, digits: digits})
		default:
			// Contradiction: try the next digit at this cell.
		}
	}
	panic("generator: exhausted search space building a complete grid")
}

// removeCells hollows out the solution: every position is tried once, in
// random order, and a removal sticks only when the deductive solver still
// finishes the puzzle. Contradictions and stuck states just restore the cell;
// they never escape to the caller.
func (g *PuzzleGenerator) removeCells(rng *rand.ChaCha8, solution core.DigitGrid) core.DigitGrid {
	problem := solution
	positions := core.Positions
	shuffle(rng, positions[:])
	for _, pos := range positions {
		removed := problem
		removed.Clear(pos)
		grid := core.CandidateGridFromDigitGrid(removed)
		if status, _, _ := g.solver.Solve(grid); status == solver.StatusSolved {
			problem = removed
		}
	}
	return problem
}

// shuffle is a Fisher-Yates permutation fed directly from the seeded stream.
// Not delegated to rand.Shuffle so that the byte-for-byte reproducibility
// contract depends only on this package and the frozen ChaCha8 stream.
func shuffle[T any](rng *rand.ChaCha8, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := randIntN(rng, i+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// randIntN returns a uniform int in [0, n) by rejection sampling.
func randIntN(rng *rand.ChaCha8, n int) int {
	if n <= 0 {
		panic("generator: randIntN needs n > 0")
	}
	limit := math.MaxUint64 - math.MaxUint64%uint64(n)
	for {
		if v := rng.Uint64(); v < limit {
			return int(v % uint64(n))
		}
	}
}
