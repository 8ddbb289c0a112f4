package solver

import "sudoku_engine/internal/core"

// HiddenSingle restricts a digit to the single position of a house that still
// admits it: when a digit has exactly one candidate position left in a row,
// column, or box, that cell must hold the digit even if the cell itself still
// lists other candidates.
//
// The placement is local; removing the digit from the new cell's peers is
// left to the NakedSingle pass that follows.
type HiddenSingle struct{}

func (HiddenSingle) Name() string { return "hidden singles" }

func (HiddenSingle) Apply(g *core.CandidateGrid) (bool, error) {
	changed := false
	for _, d := range core.Digits {
		for y := uint8(0); y < 9; y++ {
			if row := g.RowMask(y, d); row.Len() == 1 {
				x, _ := row.First()
				if g.Place(core.PositionAt(x, y), d) {
					changed = true
				}
			}
		}
		for x := uint8(0); x < 9; x++ {
			if col := g.ColMask(x, d); col.Len() == 1 {
				y, _ := col.First()
				if g.Place(core.PositionAt(x, y), d) {
					changed = true
				}
			}
		}
		for b := uint8(0); b < 9; b++ {
			if box := g.BoxMask(b, d); box.Len() == 1 {
				c, _ := box.First()
				if g.Place(core.PositionFromBox(b, c), d) {
					changed = true
				}
			}
		}
	}
	return changed, nil
}
