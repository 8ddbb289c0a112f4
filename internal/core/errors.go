package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core data model. Contradiction causes wrap
// ErrContradiction so callers can match the whole family with errors.Is.
var (
	// ErrInvalidDigit reports a digit value outside 1-9.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidPosition reports a coordinate outside the 9x9 board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrParse reports a malformed canonical grid string.
	ErrParse = errors.New("malformed grid string")

	// ErrContradiction reports an inconsistent candidate grid.
	ErrContradiction = errors.New("contradiction")

	// ErrNoCandidates reports a cell with no remaining candidates.
	ErrNoCandidates = fmt.Errorf("%w: cell has no candidates", ErrContradiction)

	// ErrDuplicateDigit reports the same decided digit twice in one house.
	ErrDuplicateDigit = fmt.Errorf("%w: duplicate decided digit in a house", ErrContradiction)

	// ErrUndecided reports a conversion attempted on a grid that still has
	// undecided cells.
	ErrUndecided = errors.New("grid has undecided cells")
)
