package bitpacket

import (
	"strings"

	"github.com/calebcase/bitpacket/packet"
)

// Node is the exported form of a packet used in reports.
type Node struct {
	Version    uint8   `json:"version" yaml:"version"`
	TypeID     uint8   `json:"type_id" yaml:"type_id"`
	Kind       string  `json:"kind" yaml:"kind"`
	Value      *uint64 `json:"value,omitempty" yaml:"value,omitempty"`
	LengthType string  `json:"length_type,omitempty" yaml:"length_type,omitempty"`
	Children   []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewNode converts a packet tree.
func NewNode(p *packet.Packet) *Node {
	n := &Node{
		Version: p.Version,
		TypeID:  p.TypeID,
		Kind:    p.Kind.Name,
	}

	if p.Kind.Literal() {
		v := p.Value
		n.Value = &v

		return n
	}

	n.LengthType = p.LengthType.String()
	for _, c := range p.Children {
		n.Children = append(n.Children, NewNode(c))
	}

	return n
}

// Report holds both results for one transmission.
type Report struct {
	Input      string `json:"input" yaml:"input"`
	Expression string `json:"expression" yaml:"expression"`
	VersionSum uint64 `json:"version_sum" yaml:"version_sum"`
	Value      uint64 `json:"value" yaml:"value"`
	Packets    int    `json:"packets" yaml:"packets"`
	Depth      int    `json:"depth" yaml:"depth"`
	Tree       *Node  `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// NewReport evaluates p. input is recorded as given.
func NewReport(input string, p *packet.Packet) (r *Report, err error) {
	v, err := packet.Evaluate(p)
	if err != nil {
		return nil, err
	}

	r = &Report{
		Input:      input,
		Expression: p.String(),
		VersionSum: packet.VersionSum(p),
		Value:      v,
		Tree:       NewNode(p),
	}

	packet.Walk(p, func(_ *packet.Packet, depth int) bool {
		r.Packets++
		if depth > r.Depth {
			r.Depth = depth
		}

		return true
	})

	return r, nil
}

// Analyze decodes s and builds its report.
func Analyze(s string) (r *Report, err error) {
	s = strings.TrimSpace(s)

	p, err := Decode(s)
	if err != nil {
		return nil, err
	}

	return NewReport(s, p)
}
