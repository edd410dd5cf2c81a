package packet

import (
	"strconv"
	"strings"
)

// String renders p as an S-expression, e.g. "(== (+ 1 3) (* 2 2))".
func (p *Packet) String() string {
	var b strings.Builder

	p.format(&b)

	return b.String()
}

func (p *Packet) format(b *strings.Builder) {
	if p.Kind.Literal() {
		b.WriteString(strconv.FormatUint(p.Value, 10))

		return
	}

	b.WriteByte('(')
	b.WriteString(p.Kind.Abbr)
	for _, c := range p.Children {
		b.WriteByte(' ')
		c.format(b)
	}
	b.WriteByte(')')
}
