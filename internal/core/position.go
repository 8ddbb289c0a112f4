package core

import "fmt"

// Position is a board coordinate. X is the column and Y is the row, both in
// the range 0-8. Positions order by row-major index.
type Position struct {
	x, y uint8
}

// Positions lists all 81 board positions in row-major order, so
// Positions[p.Index()] == p.
var Positions = allPositions()

func allPositions() [81]Position {
	var ps [81]Position
	for y := uint8(0); y < 9; y++ {
		for x := uint8(0); x < 9; x++ {
			ps[int(y)*9+int(x)] = Position{x, y}
		}
	}
	return ps
}

// NewPosition validates the coordinates and returns the position. It fails
// with ErrInvalidPosition when either coordinate is outside 0-8.
func NewPosition(x, y uint8) (Position, error) {
	if x > 8 || y > 8 {
		return Position{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, x, y)
	}
	return Position{x, y}, nil
}

// PositionAt returns the position at (x, y). It panics on coordinates outside
// 0-8; use NewPosition when the input is not already known to be valid.
func PositionAt(x, y uint8) Position {
	if x > 8 || y > 8 {
		panic(fmt.Sprintf("core: position out of range: (%d, %d)", x, y))
	}
	return Position{x, y}
}

// PositionFromBox returns the cell-th position (row-major within the box) of
// the box-th 3x3 box. It panics when either index is outside 0-8.
func PositionFromBox(box, cell uint8) Position {
	if box > 8 || cell > 8 {
		panic(fmt.Sprintf("core: box cell out of range: box %d cell %d", box, cell))
	}
	return Position{
		x: (box%3)*3 + cell%3,
		y: (box/3)*3 + cell/3,
	}
}

// X returns the column (0-8).
func (p Position) X() uint8 { return p.x }

// Y returns the row (0-8).
func (p Position) Y() uint8 { return p.y }

// Box returns the index (0-8) of the 3x3 box containing p, numbered left to
// right, top to bottom.
func (p Position) Box() uint8 { return (p.y/3)*3 + p.x/3 }

// BoxCell returns the row-major index (0-8) of p within its box.
func (p Position) BoxCell() uint8 { return (p.y%3)*3 + p.x%3 }

// Index returns the row-major board index (0-80).
func (p Position) Index() uint8 { return p.y*9 + p.x }

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.x, p.y) }
