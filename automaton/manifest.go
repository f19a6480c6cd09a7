package automaton

// Manifest summarises an expression: whether it matches the empty
// sequence, and which positions can begin and end a match.
type Manifest struct {
	Nullable bool
	First    PositionSet
	Last     PositionSet
}

// builder is the construction context of a manifest walk. The next free
// position is len(terminals); follow sets are grown in place in the arena,
// never on copies.
type builder struct {
	terminals []Terminal
}

func (b *builder) manifest(e *Expression) Manifest {
	switch e.op {
	case opSatisfy:
		p := len(b.terminals)
		b.terminals = append(b.terminals, Terminal{Predicate: e.pred})
		return Manifest{First: PositionSet{p}, Last: PositionSet{p}}

	case opEmpty:
		return Manifest{Nullable: true}

	case opStar:
		child := b.manifest(e.left)
		b.follow(child.Last, child.First)
		return Manifest{Nullable: true, First: child.First, Last: child.Last}

	case opAnd:
		left := b.manifest(e.left)
		right := b.manifest(e.right)
		b.follow(left.Last, right.First)
		first := left.First
		if left.Nullable {
			first = first.Union(right.First)
		}
		last := right.Last
		if right.Nullable {
			last = last.Union(left.Last)
		}
		return Manifest{
			Nullable: left.Nullable && right.Nullable,
			First:    first,
			Last:     last,
		}

	case opOr:
		left := b.manifest(e.left)
		right := b.manifest(e.right)
		return Manifest{
			Nullable: left.Nullable || right.Nullable,
			First:    left.First.Union(right.First),
			Last:     left.Last.Union(right.Last),
		}
	}
	panic("automaton: unknown expression node")
}

// follow adds to into the follow set of every position in from.
func (b *builder) follow(from, to PositionSet) {
	if len(to) == 0 {
		return
	}
	for _, p := range from {
		b.terminals[p].Follow = b.terminals[p].Follow.Union(to)
	}
}
