package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedStringRoundTrip(t *testing.T) {
	seed := NewSeed()
	s := seed.String()
	require.Len(t, s, 64)

	parsed, err := ParseSeed(s)
	require.NoError(t, err)
	assert.Equal(t, seed, parsed)
}

func TestParseSeed(t *testing.T) {
	hex := strings.Repeat("ab", 32)
	seed, err := ParseSeed(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, seed.String())

	_, err = ParseSeed("")
	assert.Error(t, err)
	_, err = ParseSeed(strings.Repeat("a", 63))
	assert.Error(t, err)
	_, err = ParseSeed(strings.Repeat("zz", 32))
	assert.Error(t, err)
}

func TestNewSeedVaries(t *testing.T) {
	assert.NotEqual(t, NewSeed(), NewSeed())
}

func TestZeroSeedString(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", 64), Seed{}.String())
}
