package packet

import (
	"fmt"
	"math/bits"
)

// Walk calls fn for p and every packet below it in pre-order. depth is zero
// for p. Walk stops early when fn returns false.
func Walk(p *Packet, fn func(p *Packet, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p *Packet, depth int, fn func(p *Packet, depth int) bool) bool {
	if !fn(p, depth) {
		return false
	}

	for _, c := range p.Children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}

	return true
}

// VersionSum returns the sum of the version fields of p and all of its
// descendants.
func VersionSum(p *Packet) (sum uint64) {
	Walk(p, func(p *Packet, _ int) bool {
		sum += uint64(p.Version)

		return true
	})

	return sum
}

// Evaluate reduces p to a single value.
func Evaluate(p *Packet) (v uint64, err error) {
	if p.Kind == Unknown {
		return 0, Error.Wrap(fmt.Errorf(
			"%w: %d",
			ErrInvalidTypeID,
			p.TypeID,
		))
	}

	if p.Kind.Literal() {
		return p.Value, nil
	}

	if p.Kind.Comparison() {
		return compare(p)
	}

	if len(p.Children) == 0 {
		return 0, Error.Wrap(fmt.Errorf(
			"%w: %s without children",
			ErrArity,
			p.Kind,
		))
	}

	for i, c := range p.Children {
		cv, err := Evaluate(c)
		if err != nil {
			return 0, err
		}

		if i == 0 {
			v = cv

			continue
		}

		switch p.Kind {
		case Sum:
			var carry uint64

			v, carry = bits.Add64(v, cv, 0)
			if carry != 0 {
				return 0, overflow(p.Kind, i)
			}
		case Product:
			var hi uint64

			hi, v = bits.Mul64(v, cv)
			if hi != 0 {
				return 0, overflow(p.Kind, i)
			}
		case Minimum:
			if cv < v {
				v = cv
			}
		case Maximum:
			if cv > v {
				v = cv
			}
		default:
			return 0, Error.Wrap(fmt.Errorf(
				"%w: %d",
				ErrInvalidTypeID,
				p.TypeID,
			))
		}
	}

	return v, nil
}

func compare(p *Packet) (v uint64, err error) {
	if len(p.Children) != 2 {
		return 0, Error.Wrap(fmt.Errorf(
			"%w: %s requires 2 children, have %d",
			ErrArity,
			p.Kind,
			len(p.Children),
		))
	}

	a, err := Evaluate(p.Children[0])
	if err != nil {
		return 0, err
	}

	b, err := Evaluate(p.Children[1])
	if err != nil {
		return 0, err
	}

	var ok bool

	switch p.Kind {
	case GreaterThan:
		ok = a > b
	case LessThan:
		ok = a < b
	case EqualTo:
		ok = a == b
	default:
		return 0, Error.Wrap(fmt.Errorf(
			"%w: %d",
			ErrInvalidTypeID,
			p.TypeID,
		))
	}

	if ok {
		return 1, nil
	}

	return 0, nil
}

func overflow(k Kind, child int) error {
	return Error.Wrap(fmt.Errorf(
		"%w: %s at child %d",
		ErrArithmeticOverflow,
		k,
		child,
	))
}
