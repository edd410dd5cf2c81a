package packet

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of all packet errors.
var Error = errs.Class("packet")

var (
	// ErrInvalidTypeID is returned for type ids with no known kind.
	ErrInvalidTypeID = errors.New("invalid type id")

	// ErrLengthMismatch is returned when the children of a length
	// delimited operator do not exactly fill the declared span.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrValueOverflow is returned when a literal does not fit in 64 bits.
	ErrValueOverflow = errors.New("value overflow")

	// ErrArity is returned when an operator has the wrong number of
	// children.
	ErrArity = errors.New("arity")

	// ErrArithmeticOverflow is returned when evaluation exceeds 64 bits.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
