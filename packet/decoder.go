package packet

import (
	"fmt"

	"github.com/calebcase/bitpacket/bitstream"
)

// Decoder decodes packets from a cursor.
type Decoder struct {
	c     *bitstream.Cursor
	stack *Stack
}

// NewDecoder returns a decoder reading from c.
func NewDecoder(c *bitstream.Cursor) *Decoder {
	return &Decoder{
		c:     c,
		stack: &Stack{},
	}
}

// Parse decodes one packet from c and leaves the cursor immediately after
// it.
func Parse(c *bitstream.Cursor) (p *Packet, err error) {
	return NewDecoder(c).Decode()
}

// Depth returns the number of operators currently open.
func (d *Decoder) Depth() int {
	return len(*d.stack)
}

// read consumes n bits, charging them to the enclosing spans first so an
// overrun is reported before the cursor moves.
func (d *Decoder) read(n uint) (v uint64, err error) {
	err = d.stack.Consume(uint64(n))
	if err != nil {
		return 0, err
	}

	return d.c.ReadBits(n)
}

// Decode reads one complete packet, including all of its children. After a
// failure the cursor position is unspecified.
func (d *Decoder) Decode() (p *Packet, err error) {
	p, err = d.packet()
	if err != nil {
		*d.stack = (*d.stack)[:0]

		return nil, err
	}

	return p, nil
}

func (d *Decoder) packet() (p *Packet, err error) {
	version, err := d.read(VersionBits)
	if err != nil {
		return nil, err
	}

	typeID, err := d.read(TypeIDBits)
	if err != nil {
		return nil, err
	}

	kind, ok := Kinds.Match(uint8(typeID))
	if !ok {
		return nil, Error.Wrap(fmt.Errorf(
			"%w: %d at position %d",
			ErrInvalidTypeID,
			typeID,
			d.c.Position()-TypeIDBits,
		))
	}

	p = &Packet{
		Version: uint8(version),
		TypeID:  uint8(typeID),
		Kind:    kind,
	}

	if kind.Literal() {
		p.Value, err = d.literal()
	} else {
		p.LengthType, p.Children, err = d.operator()
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (d *Decoder) literal() (value uint64, err error) {
	for {
		group, err := d.read(GroupBits)
		if err != nil {
			return 0, err
		}

		// Shifting in another nibble must not push bits off the top.
		if value>>60 != 0 {
			return 0, Error.Wrap(fmt.Errorf(
				"%w: literal exceeds 64 bits at position %d",
				ErrValueOverflow,
				d.c.Position(),
			))
		}

		value = value<<4 | group&0b_0_1111

		if group&0b_1_0000 == 0 {
			return value, nil
		}
	}
}

func (d *Decoder) operator() (lt LengthType, children []*Packet, err error) {
	v, err := d.read(LengthTypeBits)
	if err != nil {
		return lt, nil, err
	}
	lt = LengthType(v)

	f := &Frame{
		LengthType: lt,
	}

	switch lt {
	case TotalLength:
		f.Size, err = d.read(TotalLengthBits)
		if err != nil {
			return lt, nil, err
		}

		if f.Size == 0 {
			return lt, nil, Error.Wrap(fmt.Errorf(
				"%w: empty span at position %d",
				ErrLengthMismatch,
				d.c.Position(),
			))
		}

		if f.Size > d.c.Remaining() {
			return lt, nil, Error.Wrap(fmt.Errorf(
				"%w: span=%d remaining=%d position=%d",
				bitstream.ErrTruncatedInput,
				f.Size,
				d.c.Remaining(),
				d.c.Position(),
			))
		}

		f.Remaining = f.Size
	case SubPacketCount:
		f.Size, err = d.read(CountBits)
		if err != nil {
			return lt, nil, err
		}

		if f.Size == 0 {
			return lt, nil, Error.Wrap(fmt.Errorf(
				"%w: operator without children at position %d",
				ErrArity,
				d.c.Position(),
			))
		}
	}

	d.stack.Push(f)

	for !f.Done() {
		child, err := d.packet()
		if err != nil {
			return lt, nil, err
		}

		children = append(children, child)
		d.stack.Count()
	}

	err = d.stack.Pop()
	if err != nil {
		return lt, nil, err
	}

	return lt, children, nil
}
