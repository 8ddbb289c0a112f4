package generator

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Seed is the 32-byte value driving a generation run. Equal seeds produce
// byte-identical puzzles; the hex form is the interchange format for sharing
// and replaying generations.
type Seed [32]byte

// NewSeed returns a fresh random seed.
func NewSeed() Seed {
	var s Seed
	if _, err := crand.Read(s[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(errors.Wrap(err, "generator: reading random seed"))
	}
	return s
}

// ParseSeed decodes a 64-character hexadecimal seed string.
func ParseSeed(s string) (Seed, error) {
	if len(s) != 64 {
		return Seed{}, fmt.Errorf("seed must be 64 hexadecimal characters, got %d", len(s))
	}
	var seed Seed
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return Seed{}, errors.Wrap(err, "decoding seed")
	}
	return seed, nil
}

// String returns the seed as 64 lowercase hexadecimal characters.
func (s Seed) String() string { return hex.EncodeToString(s[:]) }
