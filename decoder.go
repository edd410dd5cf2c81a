package bitpacket

import (
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitpacket/packet"
)

// MaxInput bounds how much a Decoder reads from its reader. It is well above
// the largest transmission a 15 bit span can describe.
const MaxInput = 1 << 20

// Decoder reads a whole transmission from a reader.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// read consumes the reader to EOF.
func (d *Decoder) read() (s string, err error) {
	buf, err := io.ReadAll(io.LimitReader(d.r, MaxInput+1))
	if err != nil {
		return "", oops.Trace(err)
	}

	if len(buf) > MaxInput {
		return "", Error.New("input too large: limit=%d", MaxInput)
	}

	return string(buf), nil
}

// Decode reads the reader to EOF and decodes its contents as one hex
// transmission.
func (d *Decoder) Decode() (p *packet.Packet, err error) {
	s, err := d.read()
	if err != nil {
		return nil, err
	}

	return Decode(s)
}

// Analyze reads the reader to EOF and reports on its contents.
func (d *Decoder) Analyze() (r *Report, err error) {
	s, err := d.read()
	if err != nil {
		return nil, err
	}

	return Analyze(s)
}
