package core

import (
	"fmt"
	"strconv"
)

// Digit is a sudoku digit in the range 1-9. The zero value is not a valid
// digit; DigitGrid uses it to mark empty cells.
type Digit uint8

// Digits lists all nine digits in ascending order.
var Digits = [9]Digit{1, 2, 3, 4, 5, 6, 7, 8, 9}

// NewDigit validates v and returns it as a Digit. It fails with
// ErrInvalidDigit when v is outside 1-9.
func NewDigit(v uint8) (Digit, error) {
	if v < 1 || v > 9 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDigit, v)
	}
	return Digit(v), nil
}

// Value returns the numeric value of the digit (1-9).
func (d Digit) Value() uint8 { return uint8(d) }

func (d Digit) String() string { return strconv.Itoa(int(d)) }
