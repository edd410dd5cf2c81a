// Package bitpacket decodes hex encoded packet transmissions and computes
// their version sum and value.
package bitpacket

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitpacket/bitstream"
	"github.com/calebcase/bitpacket/packet"
)

// Error is the class of errors produced outside of the bitstream and packet
// packages.
var Error = errs.Class("bitpacket")

// Failure kinds, matched with errors.Is.
var (
	ErrInvalidCharacter   = bitstream.ErrInvalidCharacter
	ErrTruncatedInput     = bitstream.ErrTruncatedInput
	ErrInvalidTypeID      = packet.ErrInvalidTypeID
	ErrLengthMismatch     = packet.ErrLengthMismatch
	ErrValueOverflow      = packet.ErrValueOverflow
	ErrArity              = packet.ErrArity
	ErrArithmeticOverflow = packet.ErrArithmeticOverflow
)

// Decode parses the root packet of a hex transmission. Surrounding
// whitespace is ignored; trailing padding bits after the root packet are
// not inspected.
func Decode(s string) (p *packet.Packet, err error) {
	c, err := bitstream.ParseHex(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	return packet.Parse(c)
}

// VersionSum decodes s and returns the sum of all version fields.
func VersionSum(s string) (sum uint64, err error) {
	p, err := Decode(s)
	if err != nil {
		return 0, err
	}

	return packet.VersionSum(p), nil
}

// Evaluate decodes s and returns the value of the root packet.
func Evaluate(s string) (v uint64, err error) {
	p, err := Decode(s)
	if err != nil {
		return 0, err
	}

	return packet.Evaluate(p)
}
