package bitstream

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of all bitstream errors.
var Error = errs.Class("bitstream")

var (
	// ErrInvalidCharacter is returned when the input contains a character
	// outside of its alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrTruncatedInput is returned when a read needs more bits than remain.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidWidth is returned for reads wider than 64 bits.
	ErrInvalidWidth = errors.New("invalid width")
)
