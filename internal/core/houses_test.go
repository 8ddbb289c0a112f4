package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHouseSizes(t *testing.T) {
	for i := 0; i < 9; i++ {
		assert.Equal(t, 9, RowPositions[i].Len())
		assert.Equal(t, 9, ColPositions[i].Len())
		assert.Equal(t, 9, BoxPositions[i].Len())
	}
}

func TestHousesCoverBoard(t *testing.T) {
	var rows, cols, boxes PositionSet
	for i := 0; i < 9; i++ {
		rows = rows.Union(RowPositions[i])
		cols = cols.Union(ColPositions[i])
		boxes = boxes.Union(BoxPositions[i])
	}
	assert.Equal(t, FullPositionSet(), rows)
	assert.Equal(t, FullPositionSet(), cols)
	assert.Equal(t, FullPositionSet(), boxes)
}

func TestPeerPositions(t *testing.T) {
	for _, p := range Positions {
		peers := PeerPositions[p.Index()]
		assert.Equal(t, 20, peers.Len())
		assert.False(t, peers.Contains(p))
		for q := range peers.All() {
			sharesHouse := q.X() == p.X() || q.Y() == p.Y() || q.Box() == p.Box()
			assert.True(t, sharesHouse, "%v is not a peer of %v", q, p)
		}
	}
}

func TestHouseMaskProjections(t *testing.T) {
	var s PositionSet
	s.Insert(PositionAt(2, 4))
	s.Insert(PositionAt(7, 4))
	s.Insert(PositionAt(2, 0))

	assert.Equal(t, []uint8{2, 7}, RowMask(s, 4).Values())
	assert.True(t, RowMask(s, 5).IsEmpty())
	assert.Equal(t, []uint8{0, 4}, ColMask(s, 2).Values())

	// (2, 4) is cell 5 of box 3.
	assert.Equal(t, []uint8{5}, BoxMask(s, 3).Values())
}
