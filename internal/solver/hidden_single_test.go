package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_engine/internal/core"
)

func TestHiddenSingleInRow(t *testing.T) {
	g := core.NewCandidateGrid()
	target := core.PositionAt(5, 0)
	for p := range core.RowPositions[0].All() {
		if p != target {
			g.RemoveCandidate(p, 1)
		}
	}

	changed, err := HiddenSingle{}.Apply(g)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []core.Digit{1}, g.CandidatesAt(target).Values())

	// The placement stays local; column peers keep the digit.
	assert.True(t, g.CandidatesAt(core.PositionAt(5, 8)).Contains(1))
}

func TestHiddenSingleInColumn(t *testing.T) {
	g := core.NewCandidateGrid()
	target := core.PositionAt(0, 7)
	for p := range core.ColPositions[0].All() {
		if p != target {
			g.RemoveCandidate(p, 4)
		}
	}

	changed, err := HiddenSingle{}.Apply(g)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []core.Digit{4}, g.CandidatesAt(target).Values())
}

func TestHiddenSingleInBox(t *testing.T) {
	g := core.NewCandidateGrid()
	target := core.PositionFromBox(4, 2)
	for p := range core.BoxPositions[4].All() {
		if p != target {
			g.RemoveCandidate(p, 8)
		}
	}

	changed, err := HiddenSingle{}.Apply(g)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []core.Digit{8}, g.CandidatesAt(target).Values())
}

func TestHiddenSingleNoProgressOnOpenGrid(t *testing.T) {
	g := core.NewCandidateGrid()
	changed, err := HiddenSingle{}.Apply(g)
	require.NoError(t, err)
	assert.False(t, changed)
}
