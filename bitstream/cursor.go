package bitstream

import (
	"fmt"
)

// MaxWidth is the widest field ReadBits can return.
const MaxWidth = 64

// Cursor is a sequential reader over a fixed bit sequence.
type Cursor struct {
	data []byte
	size uint64
	pos  uint64
}

// NewCursor returns a cursor over the first size bits of data. The data is
// not copied and must not be modified while the cursor is in use.
func NewCursor(data []byte, size uint64) *Cursor {
	if limit := uint64(len(data)) * 8; size > limit {
		size = limit
	}

	return &Cursor{
		data: data,
		size: size,
	}
}

// Len returns the total number of bits in the sequence.
func (c *Cursor) Len() uint64 {
	return c.size
}

// Position returns the number of bits consumed so far.
func (c *Cursor) Position() uint64 {
	return c.pos
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() uint64 {
	return c.size - c.pos
}

// ReadBits consumes the next n bits and returns them as an unsigned integer
// with the first bit read as the most significant. On error the position is
// left unchanged.
func (c *Cursor) ReadBits(n uint) (v uint64, err error) {
	if n > MaxWidth {
		return 0, Error.Wrap(fmt.Errorf("%w: %d", ErrInvalidWidth, n))
	}

	if uint64(n) > c.Remaining() {
		return 0, Error.Wrap(fmt.Errorf(
			"%w: need=%d remaining=%d position=%d",
			ErrTruncatedInput,
			n,
			c.Remaining(),
			c.pos,
		))
	}

	for n > 0 {
		// Take as many bits as the current byte holds past the
		// position, up to n.
		offset := uint(c.pos & 7)
		avail := 8 - offset
		take := avail
		if n < take {
			take = n
		}

		b := c.data[c.pos>>3]
		chunk := (b >> (avail - take)) & byte(1<<take-1)

		v = v<<take | uint64(chunk)
		c.pos += uint64(take)
		n -= take
	}

	return v, nil
}

// String renders the unread bits as 0/1 characters.
func (c *Cursor) String() string {
	buf := make([]byte, 0, c.Remaining())
	for i := c.pos; i < c.size; i++ {
		if c.data[i>>3]&(0b_1000_0000>>(i&7)) != 0 {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}

	return string(buf)
}
