package automaton

// Predicate tests a single input byte. Implementations must be pure: the
// result may only depend on the byte. A predicate value can be shared by
// any number of expressions.
type Predicate interface {
	Test(b byte) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(b byte) bool

func (f PredicateFunc) Test(b byte) bool {
	return f(b)
}

type bytePredicate byte

func (p bytePredicate) Test(b byte) bool { return b == byte(p) }

type rangePredicate struct{ lo, hi byte }

func (p rangePredicate) Test(b byte) bool { return b >= p.lo && b <= p.hi }

// Byte matches exactly c.
func Byte(c byte) Predicate {
	return bytePredicate(c)
}

// Range matches every byte in the inclusive range lo..hi.
func Range(lo, hi byte) Predicate {
	return rangePredicate{lo: lo, hi: hi}
}

// OneOf matches any byte contained in s.
func OneOf(s string) Predicate {
	var set byteClass
	for i := 0; i < len(s); i++ {
		set.add(s[i])
	}
	return set
}

// Any matches every byte.
func Any() Predicate {
	return PredicateFunc(func(byte) bool { return true })
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(b byte) bool { return !p.Test(b) })
}

var (
	Digit    Predicate = Range('0', '9')
	Alpha    Predicate = PredicateFunc(isAlpha)
	Alnum    Predicate = PredicateFunc(func(b byte) bool { return isAlpha(b) || (b >= '0' && b <= '9') })
	Space    Predicate = OneOf(" \t\n\r\v\f")
	HexDigit Predicate = PredicateFunc(func(b byte) bool {
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	})
)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// byteClass is a 256-bit set of byte values.
type byteClass [4]uint64

func (c *byteClass) add(b byte) {
	c[b>>6] |= 1 << (b & 63)
}

func (c byteClass) has(b byte) bool {
	return c[b>>6]&(1<<(b&63)) != 0
}

func (c byteClass) Test(b byte) bool { return c.has(b) }

// classOf evaluates p once for every byte value.
func classOf(p Predicate) byteClass {
	var c byteClass
	for i := 0; i < alphabetSize; i++ {
		if p.Test(byte(i)) {
			c.add(byte(i))
		}
	}
	return c
}
