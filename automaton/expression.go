package automaton

type op uint8

const (
	opSatisfy op = iota
	opEmpty
	opStar
	opAnd
	opOr
)

// Expression is an immutable rule expression built from predicate leaves.
// Combinators return new nodes and never modify their operands, so a
// sub-expression can be reused in any number of rules. Positions are not
// stored in the tree; they are assigned when a manifest is computed.
type Expression struct {
	op          op
	pred        Predicate
	left, right *Expression
}

// Satisfy matches one byte accepted by p.
func Satisfy(p Predicate) *Expression {
	if p == nil {
		panic("automaton: Satisfy with nil predicate")
	}
	return &Expression{op: opSatisfy, pred: p}
}

// SatisfyFunc is Satisfy(PredicateFunc(f)).
func SatisfyFunc(f func(b byte) bool) *Expression {
	return Satisfy(PredicateFunc(f))
}

// Empty matches only the empty sequence.
func Empty() *Expression {
	return &Expression{op: opEmpty}
}

// Star matches zero or more repetitions of e.
func (e *Expression) Star() *Expression {
	return &Expression{op: opStar, left: mustExpr(e)}
}

// Plus matches one or more repetitions of e.
func (e *Expression) Plus() *Expression {
	return e.And(e.Star())
}

// Optional matches e or the empty sequence.
func (e *Expression) Optional() *Expression {
	return e.Or(Empty())
}

// And matches e followed by other.
func (e *Expression) And(other *Expression) *Expression {
	return &Expression{op: opAnd, left: mustExpr(e), right: mustExpr(other)}
}

// Or matches either e or other.
func (e *Expression) Or(other *Expression) *Expression {
	return &Expression{op: opOr, left: mustExpr(e), right: mustExpr(other)}
}

// Seq concatenates es from left to right. Seq() is Empty().
func Seq(es ...*Expression) *Expression {
	if len(es) == 0 {
		return Empty()
	}
	out := es[0]
	for _, e := range es[1:] {
		out = out.And(e)
	}
	return mustExpr(out)
}

// Alt is the alternation of es, in order. Alt() is Empty().
func Alt(es ...*Expression) *Expression {
	if len(es) == 0 {
		return Empty()
	}
	out := es[0]
	for _, e := range es[1:] {
		out = out.Or(e)
	}
	return mustExpr(out)
}

// Literal matches the bytes of s exactly.
func Literal(s string) *Expression {
	es := make([]*Expression, len(s))
	for i := 0; i < len(s); i++ {
		es[i] = Satisfy(Byte(s[i]))
	}
	return Seq(es...)
}

func mustExpr(e *Expression) *Expression {
	if e == nil {
		panic("automaton: nil expression")
	}
	return e
}

// Terminal pairs the predicate of one position with the positions that may
// follow it.
type Terminal struct {
	Predicate Predicate
	Follow    PositionSet
}

// Fragment is an expression annotated in its own position space: positions
// run contiguously from 0 to len(Terminals)-1.
type Fragment struct {
	Manifest
	Terminals []Terminal
}

// Fragment computes the annotation of e with local positions.
func (e *Expression) Fragment() Fragment {
	b := &builder{}
	m := b.manifest(mustExpr(e))
	return Fragment{Manifest: m, Terminals: b.terminals}
}

// Or merges f and other into their alternation. The positions of other are
// renumbered by len(f.Terminals); follow sets are left untouched.
func (f Fragment) Or(other Fragment) Fragment {
	offset := len(f.Terminals)
	terminals := make([]Terminal, 0, offset+len(other.Terminals))
	terminals = append(terminals, f.Terminals...)
	for _, t := range other.Terminals {
		terminals = append(terminals, Terminal{Predicate: t.Predicate, Follow: t.Follow.Offset(offset)})
	}
	return Fragment{
		Manifest: Manifest{
			Nullable: f.Nullable || other.Nullable,
			First:    f.First.Union(other.First.Offset(offset)),
			Last:     f.Last.Union(other.Last.Offset(offset)),
		},
		Terminals: terminals,
	}
}
