package core

import (
	"iter"
	"math/bits"
)

// Semantics9 maps values of some element type V to bit indices 0-8 and back.
// Implementations are zero-sized marker types; they exist only to keep sets
// over different index spaces (digits vs house cells) from mixing at compile
// time.
type Semantics9[V any] interface {
	Index(V) uint8
	Value(uint8) V
}

// Semantics81 maps values of some element type V to bit indices 0-80 and back.
type Semantics81[V any] interface {
	Index(V) uint8
	Value(uint8) V
}

// DigitSemantics indexes bits by digit: digit d occupies bit d-1.
type DigitSemantics struct{}

func (DigitSemantics) Index(d Digit) uint8 { return uint8(d) - 1 }
func (DigitSemantics) Value(i uint8) Digit { return Digit(i + 1) }

// CellIndexSemantics indexes bits by a cell index 0-8 within a single house.
type CellIndexSemantics struct{}

func (CellIndexSemantics) Index(i uint8) uint8 { return i }
func (CellIndexSemantics) Value(i uint8) uint8 { return i }

// PositionSemantics indexes bits by row-major board position.
type PositionSemantics struct{}

func (PositionSemantics) Index(p Position) uint8 { return p.Index() }
func (PositionSemantics) Value(i uint8) Position { return Positions[i] }

// DigitSet is a set of digits 1-9.
type DigitSet = BitSet9[DigitSemantics, Digit]

// HouseMask is a set of cell indices 0-8 within one house (row, column, or
// box).
type HouseMask = BitSet9[CellIndexSemantics, uint8]

// PositionSet is a set of board positions.
type PositionSet = BitSet81[PositionSemantics, Position]

const bits9Mask = uint16(1)<<9 - 1

// BitSet9 is a fixed-capacity set of up to 9 elements backed by a uint16.
// The semantics parameter S fixes which index space the bits mean; sets with
// different semantics are distinct types.
type BitSet9[S Semantics9[V], V any] struct {
	bits uint16
}

// FullDigitSet returns the set of all nine digits.
func FullDigitSet() DigitSet { return DigitSet{bits: bits9Mask} }

// Contains reports whether v is in the set.
func (s BitSet9[S, V]) Contains(v V) bool {
	var sem S
	return s.bits&(1<<sem.Index(v)) != 0
}

// Insert adds v and reports whether the set changed.
func (s *BitSet9[S, V]) Insert(v V) bool {
	var sem S
	bit := uint16(1) << sem.Index(v)
	changed := s.bits&bit == 0
	s.bits |= bit
	return changed
}

// Remove deletes v and reports whether the set changed.
func (s *BitSet9[S, V]) Remove(v V) bool {
	var sem S
	bit := uint16(1) << sem.Index(v)
	changed := s.bits&bit != 0
	s.bits &^= bit
	return changed
}

// Set inserts v when present is true and removes it otherwise, reporting
// whether the set changed.
func (s *BitSet9[S, V]) Set(v V, present bool) bool {
	if present {
		return s.Insert(v)
	}
	return s.Remove(v)
}

// Len returns the number of elements.
func (s BitSet9[S, V]) Len() int { return bits.OnesCount16(s.bits) }

// IsEmpty reports whether the set has no elements.
func (s BitSet9[S, V]) IsEmpty() bool { return s.bits == 0 }

// Union returns all elements in s or o.
func (s BitSet9[S, V]) Union(o BitSet9[S, V]) BitSet9[S, V] {
	return BitSet9[S, V]{bits: s.bits | o.bits}
}

// Intersect returns all elements in both s and o.
func (s BitSet9[S, V]) Intersect(o BitSet9[S, V]) BitSet9[S, V] {
	return BitSet9[S, V]{bits: s.bits & o.bits}
}

// Difference returns all elements in s but not in o.
func (s BitSet9[S, V]) Difference(o BitSet9[S, V]) BitSet9[S, V] {
	return BitSet9[S, V]{bits: s.bits &^ o.bits}
}

// Complement returns all elements of the index space not in s.
func (s BitSet9[S, V]) Complement() BitSet9[S, V] {
	return BitSet9[S, V]{bits: ^s.bits & bits9Mask}
}

// First returns the element with the lowest index, if any.
func (s BitSet9[S, V]) First() (V, bool) {
	var sem S
	if s.bits == 0 {
		var zero V
		return zero, false
	}
	return sem.Value(uint8(bits.TrailingZeros16(s.bits))), true
}

// PopFirst removes and returns the element with the lowest index, if any.
func (s *BitSet9[S, V]) PopFirst() (V, bool) {
	v, ok := s.First()
	if ok {
		s.Remove(v)
	}
	return v, ok
}

// PopNth removes and returns the n-th element (0-based, in index order), if
// the set has more than n elements.
func (s *BitSet9[S, V]) PopNth(n int) (V, bool) {
	var sem S
	rest := s.bits
	for i := 0; rest != 0; i++ {
		idx := uint8(bits.TrailingZeros16(rest))
		if i == n {
			s.bits &^= 1 << idx
			return sem.Value(idx), true
		}
		rest &^= 1 << idx
	}
	var zero V
	return zero, false
}

// All iterates the elements in index order. The sequence is finite and
// restartable: every range starts a fresh scan.
func (s BitSet9[S, V]) All() iter.Seq[V] {
	var sem S
	return func(yield func(V) bool) {
		for rest := s.bits; rest != 0; rest &= rest - 1 {
			if !yield(sem.Value(uint8(bits.TrailingZeros16(rest)))) {
				return
			}
		}
	}
}

// Values returns the elements as a slice in index order.
func (s BitSet9[S, V]) Values() []V {
	vs := make([]V, 0, s.Len())
	for v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}

const bits81HiMask = uint64(1)<<17 - 1

// BitSet81 is a fixed-capacity set of up to 81 elements backed by two uint64
// words; lo holds bits 0-63 and hi holds bits 64-80. Like BitSet9 it is
// tagged by an index semantics marker.
type BitSet81[S Semantics81[V], V any] struct {
	lo, hi uint64
}

// FullPositionSet returns the set of all 81 board positions.
func FullPositionSet() PositionSet {
	return PositionSet{lo: ^uint64(0), hi: bits81HiMask}
}

// Contains reports whether v is in the set.
func (s BitSet81[S, V]) Contains(v V) bool {
	var sem S
	idx := sem.Index(v)
	if idx < 64 {
		return s.lo&(1<<idx) != 0
	}
	return s.hi&(1<<(idx-64)) != 0
}

// Insert adds v and reports whether the set changed.
func (s *BitSet81[S, V]) Insert(v V) bool {
	var sem S
	idx := sem.Index(v)
	if idx < 64 {
		bit := uint64(1) << idx
		changed := s.lo&bit == 0
		s.lo |= bit
		return changed
	}
	bit := uint64(1) << (idx - 64)
	changed := s.hi&bit == 0
	s.hi |= bit
	return changed
}

// Remove deletes v and reports whether the set changed.
func (s *BitSet81[S, V]) Remove(v V) bool {
	var sem S
	idx := sem.Index(v)
	if idx < 64 {
		bit := uint64(1) << idx
		changed := s.lo&bit != 0
		s.lo &^= bit
		return changed
	}
	bit := uint64(1) << (idx - 64)
	changed := s.hi&bit != 0
	s.hi &^= bit
	return changed
}

// Set inserts v when present is true and removes it otherwise, reporting
// whether the set changed.
func (s *BitSet81[S, V]) Set(v V, present bool) bool {
	if present {
		return s.Insert(v)
	}
	return s.Remove(v)
}

// Len returns the number of elements.
func (s BitSet81[S, V]) Len() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// IsEmpty reports whether the set has no elements.
func (s BitSet81[S, V]) IsEmpty() bool { return s.lo == 0 && s.hi == 0 }

// Union returns all elements in s or o.
func (s BitSet81[S, V]) Union(o BitSet81[S, V]) BitSet81[S, V] {
	return BitSet81[S, V]{lo: s.lo | o.lo, hi: s.hi | o.hi}
}

// Intersect returns all elements in both s and o.
func (s BitSet81[S, V]) Intersect(o BitSet81[S, V]) BitSet81[S, V] {
	return BitSet81[S, V]{lo: s.lo & o.lo, hi: s.hi & o.hi}
}

// Difference returns all elements in s but not in o.
func (s BitSet81[S, V]) Difference(o BitSet81[S, V]) BitSet81[S, V] {
	return BitSet81[S, V]{lo: s.lo &^ o.lo, hi: s.hi &^ o.hi}
}

// Complement returns all elements of the index space not in s.
func (s BitSet81[S, V]) Complement() BitSet81[S, V] {
	return BitSet81[S, V]{lo: ^s.lo, hi: ^s.hi & bits81HiMask}
}

// First returns the element with the lowest index, if any.
func (s BitSet81[S, V]) First() (V, bool) {
	var sem S
	if s.lo != 0 {
		return sem.Value(uint8(bits.TrailingZeros64(s.lo))), true
	}
	if s.hi != 0 {
		return sem.Value(uint8(64 + bits.TrailingZeros64(s.hi))), true
	}
	var zero V
	return zero, false
}

// PopFirst removes and returns the element with the lowest index, if any.
func (s *BitSet81[S, V]) PopFirst() (V, bool) {
	v, ok := s.First()
	if ok {
		s.Remove(v)
	}
	return v, ok
}

// All iterates the elements in index order. The sequence is finite and
// restartable: every range starts a fresh scan.
func (s BitSet81[S, V]) All() iter.Seq[V] {
	var sem S
	return func(yield func(V) bool) {
		for rest := s.lo; rest != 0; rest &= rest - 1 {
			if !yield(sem.Value(uint8(bits.TrailingZeros64(rest)))) {
				return
			}
		}
		for rest := s.hi; rest != 0; rest &= rest - 1 {
			if !yield(sem.Value(uint8(64 + bits.TrailingZeros64(rest)))) {
				return
			}
		}
	}
}

// Values returns the elements as a slice in index order.
func (s BitSet81[S, V]) Values() []V {
	vs := make([]V, 0, s.Len())
	for v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}
