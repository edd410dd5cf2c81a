package packet

// Kind identifies what a packet holds and how it evaluates.
type Kind struct {
	TypeID uint8
	Name   string
	Abbr   string

	// Arity is the exact number of children required, or zero when any
	// non-empty list is allowed.
	Arity int
}

// Literal returns true for the literal kind.
func (k Kind) Literal() bool {
	return k == Literal
}

// Comparison returns true for the binary comparison kinds.
func (k Kind) Comparison() bool {
	return k.Arity == 2
}

func (k Kind) String() string {
	return k.Name
}

type kinds []Kind

// Match returns the kind for the given type id.
func (ks kinds) Match(id uint8) (k Kind, ok bool) {
	for _, k := range ks {
		if k.TypeID == id {
			return k, true
		}
	}

	return k, false
}

var (
	Unknown     = Kind{}
	Sum         = Kind{0, "sum", "+", 0}
	Product     = Kind{1, "product", "*", 0}
	Minimum     = Kind{2, "minimum", "min", 0}
	Maximum     = Kind{3, "maximum", "max", 0}
	Literal     = Kind{4, "literal", "lit", 0}
	GreaterThan = Kind{5, "greater_than", ">", 2}
	LessThan    = Kind{6, "less_than", "<", 2}
	EqualTo     = Kind{7, "equal_to", "==", 2}

	Kinds = kinds{
		Sum,
		Product,
		Minimum,
		Maximum,
		Literal,
		GreaterThan,
		LessThan,
		EqualTo,
	}
)
