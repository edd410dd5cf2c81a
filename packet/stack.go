package packet

import (
	"fmt"
)

// Frame is an operator whose children are still being decoded.
type Frame struct {
	LengthType LengthType

	// If the length type is TotalLength then Size is the declared number
	// of bits for all children and Remaining is how many of them have not
	// been consumed yet.
	Size      uint64
	Remaining uint64

	// If the length type is SubPacketCount then Size is the declared
	// number of children and Count is how many have been decoded.
	Count uint64
}

// Done returns true when the frame has received all of its children.
func (f *Frame) Done() bool {
	switch f.LengthType {
	case TotalLength:
		return f.Remaining == 0
	case SubPacketCount:
		return f.Count >= f.Size
	}

	return true
}

// Stack tracks the open operators from the root down to the packet
// currently being decoded.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

// Pop removes the top frame. It fails if the frame did not receive exactly
// what it declared.
func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	switch top.LengthType {
	case TotalLength:
		if top.Remaining != 0 {
			return Error.Wrap(fmt.Errorf(
				"%w: span not filled: size=%d remaining=%d",
				ErrLengthMismatch,
				top.Size,
				top.Remaining,
			))
		}
	case SubPacketCount:
		if top.Count != top.Size {
			return Error.Wrap(fmt.Errorf(
				"%w: count=%d decoded=%d",
				ErrLengthMismatch,
				top.Size,
				top.Count,
			))
		}
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count records a decoded child in the top frame.
func (s *Stack) Count() {
	top := s.Top()
	if top == nil {
		return
	}

	top.Count++
}

// Consume charges size bits to every enclosing TotalLength frame. Nothing is
// charged if any of them would overrun.
func (s *Stack) Consume(size uint64) (err error) {
	for i, f := range *s {
		if f.LengthType != TotalLength {
			continue
		}

		if size > f.Remaining {
			return Error.Wrap(fmt.Errorf(
				"%w: span overrun: depth=%d/%d size=%d remaining=%d consuming=%d",
				ErrLengthMismatch,
				i,
				len(*s),
				f.Size,
				f.Remaining,
				size,
			))
		}
	}

	for _, f := range *s {
		if f.LengthType == TotalLength {
			f.Remaining -= size
		}
	}

	return nil
}
