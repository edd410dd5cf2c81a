package packet

// LengthType is how an operator delimits its children.
type LengthType uint8

const (
	// TotalLength operators declare the number of bits their children
	// take in a 15 bit field.
	TotalLength LengthType = 0

	// SubPacketCount operators declare the number of children in an 11
	// bit field.
	SubPacketCount LengthType = 1
)

// Field widths in bits.
const (
	VersionBits     = 3
	TypeIDBits      = 3
	LengthTypeBits  = 1
	TotalLengthBits = 15
	CountBits       = 11
	GroupBits       = 5

	// MinBits is the size of the smallest possible packet: a header
	// followed by a single literal group.
	MinBits = VersionBits + TypeIDBits + GroupBits
)

func (lt LengthType) String() string {
	switch lt {
	case TotalLength:
		return "total_length"
	case SubPacketCount:
		return "sub_packet_count"
	}

	return "unknown"
}

// Packet is one decoded node of a transmission. Literal packets carry Value;
// operator packets carry LengthType and Children. Packets are not modified
// after decoding.
type Packet struct {
	Version uint8
	TypeID  uint8
	Kind    Kind

	Value uint64

	LengthType LengthType
	Children   []*Packet
}
