package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_engine/internal/core"
	"sudoku_engine/internal/solver"
)

func newGenerator() *PuzzleGenerator {
	return New(solver.NewTechniqueSolverWithAll())
}

func newRng() *rand.ChaCha8 {
	return rand.NewChaCha8(Seed{})
}

func requireValidSolution(t *testing.T, g core.DigitGrid) {
	t.Helper()
	require.Equal(t, 81, g.FilledCount())
	solved, err := core.CandidateGridFromDigitGrid(g).IsSolved()
	require.NoError(t, err)
	require.True(t, solved)
}

func TestGenerateWithSeedReproducible(t *testing.T) {
	gen := newGenerator()
	seed := Seed{}

	a := gen.GenerateWithSeed(seed)
	b := gen.GenerateWithSeed(seed)

	assert.Equal(t, a.Problem, b.Problem)
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, seed, a.Seed)
}

func TestGenerateSolutionIsValid(t *testing.T) {
	puzzle := newGenerator().GenerateWithSeed(Seed{})
	requireValidSolution(t, puzzle.Solution)
}

func TestGenerateProblemIsSubsetOfSolution(t *testing.T) {
	puzzle := newGenerator().GenerateWithSeed(Seed{})
	for _, p := range core.Positions {
		if d, filled := puzzle.Problem.Get(p); filled {
			sol, _ := puzzle.Solution.Get(p)
			assert.Equal(t, sol, d, "problem disagrees with solution at %v", p)
		}
	}
	assert.Less(t, puzzle.Problem.FilledCount(), 81)
}

func TestGenerateProblemSolvableByDeduction(t *testing.T) {
	puzzle := newGenerator().GenerateWithSeed(Seed{})

	g := core.CandidateGridFromDigitGrid(puzzle.Problem)
	status, _, err := solver.NewTechniqueSolverWithAll().Solve(g)
	require.NoError(t, err)
	require.Equal(t, solver.StatusSolved, status)

	got, err := g.ToDigitGrid()
	require.NoError(t, err)
	assert.Equal(t, puzzle.Solution, got)
}

func TestGenerateClueCountInRange(t *testing.T) {
	puzzle := newGenerator().GenerateWithSeed(Seed{})
	clues := puzzle.Problem.FilledCount()
	assert.GreaterOrEqual(t, clues, 17, "below the minimum for a unique puzzle")
	assert.Less(t, clues, 81)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	gen := newGenerator()
	a := gen.GenerateWithSeed(Seed{})
	b := gen.GenerateWithSeed(Seed{0: 1})
	assert.NotEqual(t, a.Problem, b.Problem)
}

func TestGenerateFreshSeed(t *testing.T) {
	puzzle := newGenerator().Generate()
	requireValidSolution(t, puzzle.Solution)

	replay := newGenerator().GenerateWithSeed(puzzle.Seed)
	assert.Equal(t, puzzle.Problem, replay.Problem)
	assert.Equal(t, puzzle.Solution, replay.Solution)
}

func TestShuffleDeterministic(t *testing.T) {
	perm := func() []int {
		rng := newRng()
		xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
		shuffle(rng, xs)
		return xs
	}
	first := perm()
	assert.Equal(t, first, perm())
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, first)
}

func TestRandIntNBounds(t *testing.T) {
	rng := newRng()
	for i := 0; i < 1000; i++ {
		v := randIntN(rng, 9)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 9)
	}
	assert.Panics(t, func() { randIntN(rng, 0) })
}
