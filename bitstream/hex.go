package bitstream

import (
	"fmt"
)

// nibble maps a hex character to its value. ok is false for characters
// outside of [0-9a-fA-F].
func nibble(r rune) (v byte, ok bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}

	return 0, false
}

// ParseHex expands each hex character of s into its four bit big-endian
// form and returns a cursor over the concatenation. Whitespace is not
// skipped; callers should trim the input first.
func ParseHex(s string) (c *Cursor, err error) {
	data := make([]byte, (len(s)+1)/2)

	for i, r := range s {
		v, ok := nibble(r)
		if !ok {
			return nil, Error.Wrap(fmt.Errorf(
				"%w: %q at index %d",
				ErrInvalidCharacter,
				r,
				i,
			))
		}

		// Even characters fill the high nibble.
		if i%2 == 0 {
			data[i/2] = v << 4
		} else {
			data[i/2] |= v
		}
	}

	return NewCursor(data, uint64(len(s))*4), nil
}

// ParseBinary returns a cursor over a textual sequence of '0' and '1'
// characters.
func ParseBinary(s string) (c *Cursor, err error) {
	data := make([]byte, (len(s)+7)/8)

	for i, r := range s {
		switch r {
		case '0':
		case '1':
			data[i/8] |= 0b_1000_0000 >> (i % 8)
		default:
			return nil, Error.Wrap(fmt.Errorf(
				"%w: %q at index %d",
				ErrInvalidCharacter,
				r,
				i,
			))
		}
	}

	return NewCursor(data, uint64(len(s))), nil
}
