package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_engine/internal/core"
)

const samplePuzzle = "53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

func mustParse(t *testing.T, s string) core.DigitGrid {
	t.Helper()
	g, err := core.ParseDigitGrid(s)
	require.NoError(t, err)
	return g
}

func requireValidSolution(t *testing.T, g core.DigitGrid) {
	t.Helper()
	require.Equal(t, 81, g.FilledCount())
	solved, err := core.CandidateGridFromDigitGrid(g).IsSolved()
	require.NoError(t, err)
	require.True(t, solved)
}

func TestBacktrackSolverSolvesUniquePuzzle(t *testing.T) {
	puzzle := mustParse(t, samplePuzzle)
	want := mustParse(t, sampleSolution)

	solutions, err := NewBacktrackSolverWithAll().Solve(*core.CandidateGridFromDigitGrid(puzzle))
	require.NoError(t, err)

	first, ok := solutions.Next()
	require.True(t, ok)
	assert.Equal(t, want, first.Grid)
	requireValidSolution(t, first.Grid)

	_, ok = solutions.Next()
	assert.False(t, ok, "puzzle has a unique solution")
}

func TestBacktrackSolverPreservesClues(t *testing.T) {
	puzzle := mustParse(t, samplePuzzle)
	solutions, err := NewBacktrackSolverWithAll().Solve(*core.CandidateGridFromDigitGrid(puzzle))
	require.NoError(t, err)

	first, ok := solutions.Next()
	require.True(t, ok)
	for _, p := range core.Positions {
		if d, filled := puzzle.Get(p); filled {
			got, _ := first.Grid.Get(p)
			assert.Equal(t, d, got, "clue at %v changed", p)
		}
	}
}

func TestBacktrackSolverEmptyGridHasManySolutions(t *testing.T) {
	solutions, err := NewBacktrackSolverWithAll().Solve(*core.NewCandidateGrid())
	require.NoError(t, err)

	first, ok := solutions.Next()
	require.True(t, ok)
	requireValidSolution(t, first.Grid)
	assert.False(t, first.Stats.SolvedWithoutAssumptions())

	second, ok := solutions.Next()
	require.True(t, ok)
	requireValidSolution(t, second.Grid)
	assert.NotEqual(t, first.Grid, second.Grid)
}

func TestBacktrackSolverContradictoryInput(t *testing.T) {
	g := core.NewCandidateGrid()
	g.Place(core.PositionAt(0, 0), 5)
	g.Place(core.PositionAt(1, 0), 5)

	_, err := NewBacktrackSolverWithAll().Solve(*g)
	assert.ErrorIs(t, err, core.ErrContradiction)
}

func TestBacktrackSolverDeterministic(t *testing.T) {
	puzzle := mustParse(t, samplePuzzle)
	solve := func() core.DigitGrid {
		solutions, err := NewBacktrackSolverWithAll().Solve(*core.CandidateGridFromDigitGrid(puzzle))
		require.NoError(t, err)
		s, ok := solutions.Next()
		require.True(t, ok)
		return s.Grid
	}
	assert.Equal(t, solve(), solve())
}

func TestPureBacktrackSolver(t *testing.T) {
	puzzle := mustParse(t, samplePuzzle)
	want := mustParse(t, sampleSolution)

	solutions, err := NewPureBacktrackSolver().Solve(*core.CandidateGridFromDigitGrid(puzzle))
	require.NoError(t, err)

	first, ok := solutions.Next()
	require.True(t, ok)
	assert.Equal(t, want, first.Grid)
	assert.False(t, first.Stats.SolvedWithoutAssumptions())
	assert.Equal(t, first.Stats.Backtracks, solutions.Backtracks())
}

func TestBacktrackSolverDoesNotMutateInput(t *testing.T) {
	puzzle := mustParse(t, samplePuzzle)
	g := core.CandidateGridFromDigitGrid(puzzle)
	before := g.Clone()

	solutions, err := NewBacktrackSolverWithAll().Solve(*g)
	require.NoError(t, err)
	_, ok := solutions.Next()
	require.True(t, ok)

	assert.Equal(t, before, *g)
}

func TestBacktrackStatsIndependentPerSolution(t *testing.T) {
	solutions, err := NewBacktrackSolverWithAll().Solve(*core.NewCandidateGrid())
	require.NoError(t, err)

	first, ok := solutions.Next()
	require.True(t, ok)
	firstAssumptions := len(first.Stats.Assumptions)

	second, ok := solutions.Next()
	require.True(t, ok)

	assert.Equal(t, firstAssumptions, len(first.Stats.Assumptions))
	assert.GreaterOrEqual(t, second.Stats.Backtracks, first.Stats.Backtracks)
}
