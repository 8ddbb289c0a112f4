package solver

import "sudoku_engine/internal/core"

// NakedSingle places every decided cell and propagates the placement:
// the digit is removed from the 20 peer positions sharing a row, column, or
// box with the cell.
//
// This is the only technique that propagates. All other techniques create
// decided cells and rely on a later NakedSingle pass to push the consequences
// into the peers, which is what drives the deduction loop to a fixed point.
type NakedSingle struct{}

func (NakedSingle) Name() string { return "naked singles" }

func (NakedSingle) Apply(g *core.CandidateGrid) (bool, error) {
	changed := false
	decided := g.DecidedCells()
	for _, d := range core.Digits {
		for pos := range g.DigitPositions(d).Intersect(decided).All() {
			if g.Place(pos, d) {
				changed = true
			}
			if g.RemoveCandidateMask(core.PeerPositions[pos.Index()], d) {
				changed = true
			}
		}
	}
	return changed, nil
}
