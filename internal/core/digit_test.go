package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigit(t *testing.T) {
	for v := uint8(1); v <= 9; v++ {
		d, err := NewDigit(v)
		require.NoError(t, err)
		assert.Equal(t, v, d.Value())
	}

	for _, v := range []uint8{0, 10, 255} {
		_, err := NewDigit(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDigit)
	}
}

func TestDigitsOrder(t *testing.T) {
	for i, d := range Digits {
		assert.Equal(t, uint8(i+1), d.Value())
	}
}

func TestDigitString(t *testing.T) {
	assert.Equal(t, "7", Digit(7).String())
}
