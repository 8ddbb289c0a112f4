package core

// The 27 houses of the board, precomputed as position sets. A house is a set
// of 9 positions that must contain each digit exactly once.
var (
	// RowPositions[y] contains the 9 positions of row y.
	RowPositions = rowPositions()

	// ColPositions[x] contains the 9 positions of column x.
	ColPositions = colPositions()

	// BoxPositions[b] contains the 9 positions of box b, boxes numbered left
	// to right, top to bottom.
	BoxPositions = boxPositions()

	// PeerPositions[p.Index()] contains the 20 positions sharing a row,
	// column, or box with p, excluding p itself (8 row + 8 column + 4 box
	// peers after removing the overlaps).
	PeerPositions = peerPositions()
)

func rowPositions() [9]PositionSet {
	var rows [9]PositionSet
	for y := uint8(0); y < 9; y++ {
		for x := uint8(0); x < 9; x++ {
			rows[y].Insert(PositionAt(x, y))
		}
	}
	return rows
}

func colPositions() [9]PositionSet {
	var cols [9]PositionSet
	for x := uint8(0); x < 9; x++ {
		for y := uint8(0); y < 9; y++ {
			cols[x].Insert(PositionAt(x, y))
		}
	}
	return cols
}

func boxPositions() [9]PositionSet {
	var boxes [9]PositionSet
	for b := uint8(0); b < 9; b++ {
		for c := uint8(0); c < 9; c++ {
			boxes[b].Insert(PositionFromBox(b, c))
		}
	}
	return boxes
}

func peerPositions() [81]PositionSet {
	var peers [81]PositionSet
	for _, p := range Positions {
		set := RowPositions[p.Y()].
			Union(ColPositions[p.X()]).
			Union(BoxPositions[p.Box()])
		set.Remove(p)
		peers[p.Index()] = set
	}
	return peers
}

// RowMask projects the members of s lying in row y onto their column indices.
func RowMask(s PositionSet, y uint8) HouseMask {
	var mask HouseMask
	for p := range s.Intersect(RowPositions[y]).All() {
		mask.Insert(p.X())
	}
	return mask
}

// ColMask projects the members of s lying in column x onto their row indices.
func ColMask(s PositionSet, x uint8) HouseMask {
	var mask HouseMask
	for p := range s.Intersect(ColPositions[x]).All() {
		mask.Insert(p.Y())
	}
	return mask
}

// BoxMask projects the members of s lying in box b onto their box-local cell
// indices.
func BoxMask(s PositionSet, b uint8) HouseMask {
	var mask HouseMask
	for p := range s.Intersect(BoxPositions[b]).All() {
		mask.Insert(p.BoxCell())
	}
	return mask
}
