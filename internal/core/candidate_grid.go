package core

// CandidateGrid tracks, for each digit, the set of positions where that digit
// is still a candidate. It is a pure store: the only rule knowledge it
// carries is that a cell with exactly one candidate is decided. Constraint
// propagation is the deduction layer's job.
//
// The struct is a plain value; copying it (assignment) is how search branches
// fork the state.
type CandidateGrid struct {
	// digitPositions[d-1] holds the candidate positions for digit d.
	digitPositions [9]PositionSet
}

// NewCandidateGrid returns a grid where every digit is a candidate at every
// position.
func NewCandidateGrid() *CandidateGrid {
	var g CandidateGrid
	for i := range g.digitPositions {
		g.digitPositions[i] = FullPositionSet()
	}
	return &g
}

// CandidateGridFromDigitGrid seeds a candidate grid from a digit grid: every
// filled cell is placed (restricting that cell to its digit), every empty
// cell keeps all nine candidates. The conversion is lossless.
func CandidateGridFromDigitGrid(dg DigitGrid) *CandidateGrid {
	g := NewCandidateGrid()
	for _, p := range Positions {
		if d, ok := dg.Get(p); ok {
			g.Place(p, d)
		}
	}
	return g
}

// Clone returns a copy of the grid.
func (g *CandidateGrid) Clone() CandidateGrid { return *g }

// Place restricts the candidates at pos to exactly {digit}. The effect is
// local: peers in the same row, column, and box keep their candidates.
// It reports whether anything changed; placing the same digit at an already
// decided cell is a no-op.
func (g *CandidateGrid) Place(pos Position, digit Digit) bool {
	changed := false
	for i := range g.digitPositions {
		if g.digitPositions[i].Set(pos, Digit(i+1) == digit) {
			changed = true
		}
	}
	return changed
}

// RemoveCandidate clears digit as a candidate at pos, reporting whether it
// was present.
func (g *CandidateGrid) RemoveCandidate(pos Position, digit Digit) bool {
	return g.digitPositions[digit-1].Remove(pos)
}

// RemoveCandidateMask clears digit as a candidate at every position in mask,
// reporting whether any was present. Batch form of RemoveCandidate.
func (g *CandidateGrid) RemoveCandidateMask(mask PositionSet, digit Digit) bool {
	before := g.digitPositions[digit-1]
	g.digitPositions[digit-1] = before.Difference(mask)
	return before != g.digitPositions[digit-1]
}

// DigitPositions returns the set of positions where digit is a candidate.
func (g *CandidateGrid) DigitPositions(digit Digit) PositionSet {
	return g.digitPositions[digit-1]
}

// CandidatesAt returns the candidate digits remaining at pos. Scans the nine
// digit sets; there is no per-cell cache.
func (g *CandidateGrid) CandidatesAt(pos Position) DigitSet {
	var candidates DigitSet
	for i := range g.digitPositions {
		if g.digitPositions[i].Contains(pos) {
			candidates.Insert(Digit(i + 1))
		}
	}
	return candidates
}

// RowMask returns the candidate positions for digit in row y, as column
// indices. A single-bit result is a hidden single.
func (g *CandidateGrid) RowMask(y uint8, digit Digit) HouseMask {
	return RowMask(g.digitPositions[digit-1], y)
}

// ColMask returns the candidate positions for digit in column x, as row
// indices.
func (g *CandidateGrid) ColMask(x uint8, digit Digit) HouseMask {
	return ColMask(g.digitPositions[digit-1], x)
}

// BoxMask returns the candidate positions for digit in box b, as box-local
// cell indices.
func (g *CandidateGrid) BoxMask(b uint8, digit Digit) HouseMask {
	return BoxMask(g.digitPositions[digit-1], b)
}

// DecidedCells returns the positions with exactly one remaining candidate.
func (g *CandidateGrid) DecidedCells() PositionSet {
	cells := g.ClassifyCells(2)
	return cells[1]
}

// ClassifyCells groups positions by candidate count: slot k of the result
// holds the positions with exactly k candidates (slot 0 is contradictions).
// Positions with n or more candidates appear in no slot, so slot sizes sum to
// 81 only when n is 10.
//
// The classification runs digit by digit as a bitwise counter update rather
// than scanning the 81 cells: for each digit set, slot k first drops the
// positions holding the digit, then picks up the positions promoted from slot
// k-1, in decreasing k so a position advances at most one slot per digit.
func (g *CandidateGrid) ClassifyCells(n int) []PositionSet {
	cells := make([]PositionSet, n)
	cells[0] = FullPositionSet()
	for count, digitPos := range g.digitPositions {
		end := min(count+2, n)
		for i := end - 1; i >= 1; i-- {
			cells[i] = cells[i].Difference(digitPos)
			cells[i] = cells[i].Union(cells[i-1].Intersect(digitPos))
		}
		cells[0] = cells[0].Difference(digitPos)
	}
	return cells
}

// CheckConsistency fails when the grid is inconsistent: some position has no
// candidates (ErrNoCandidates) or some house has two decided cells holding
// the same digit (ErrDuplicateDigit). Both errors match ErrContradiction.
func (g *CandidateGrid) CheckConsistency() error {
	cells := g.ClassifyCells(2)
	if !cells[0].IsEmpty() {
		return ErrNoCandidates
	}
	if !g.placedDigitsAreUnique(cells[1]) {
		return ErrDuplicateDigit
	}
	return nil
}

// IsSolved reports whether every position is decided. It fails with the same
// contradiction errors as CheckConsistency when the grid is inconsistent.
func (g *CandidateGrid) IsSolved() (bool, error) {
	cells := g.ClassifyCells(2)
	if !cells[0].IsEmpty() {
		return false, ErrNoCandidates
	}
	if !g.placedDigitsAreUnique(cells[1]) {
		return false, ErrDuplicateDigit
	}
	return cells[1].Len() == 81, nil
}

// placedDigitsAreUnique checks that no decided digit repeats within a row,
// column, or box.
func (g *CandidateGrid) placedDigitsAreUnique(decided PositionSet) bool {
	for i := range g.digitPositions {
		decidedDigitCells := g.digitPositions[i].Intersect(decided)
		for p := range decidedDigitCells.All() {
			if RowMask(decidedDigitCells, p.Y()).Len() != 1 {
				return false
			}
			if ColMask(decidedDigitCells, p.X()).Len() != 1 {
				return false
			}
			if BoxMask(decidedDigitCells, p.Box()).Len() != 1 {
				return false
			}
		}
	}
	return true
}

// ToDigitGrid converts a fully decided grid to its digit grid. It fails with
// ErrUndecided unless every position has exactly one candidate; contradictory
// grids fail the same way since a zero-candidate cell is not decided either.
func (g *CandidateGrid) ToDigitGrid() (DigitGrid, error) {
	decided := g.DecidedCells()
	if decided.Len() != 81 {
		return DigitGrid{}, ErrUndecided
	}
	return g.decidedDigits(decided), nil
}

// DecidedDigits extracts the decided cells into a (possibly partial) digit
// grid, dropping undecided cells. ToDigitGrid is the checked conversion.
func (g *CandidateGrid) DecidedDigits() DigitGrid {
	return g.decidedDigits(g.DecidedCells())
}

func (g *CandidateGrid) decidedDigits(decided PositionSet) DigitGrid {
	var dg DigitGrid
	for i := range g.digitPositions {
		for p := range g.digitPositions[i].Intersect(decided).All() {
			dg.Set(p, Digit(i+1))
		}
	}
	return dg
}
