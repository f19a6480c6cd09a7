package automaton

import (
	"errors"
	"testing"
)

func TestTableStateDeduplication(t *testing.T) {
	// a* has a single live set {0}: the initial state and the state after
	// any number of a's are the same row.
	m := compile(t, is('a').Star())
	if m.States() != 1 {
		t.Fatalf("States = %d, want 1", m.States())
	}
	a := m.Action(m.Initial(), 'a')
	if a.Kind != AcceptAndGoto || a.Rule != 0 || a.Next != m.Initial() {
		t.Errorf("Action(initial, 'a') = %v, want AcceptAndGoto(0, %d)", a, m.Initial())
	}
	if a := m.Action(m.Initial(), 'b'); a.Kind != Failure {
		t.Errorf("Action(initial, 'b') = %v, want Failure", a)
	}
}

func TestTableStateIDsAreSorted(t *testing.T) {
	// "abc": states {0}, {1}, {2} in that order.
	m := compile(t, Literal("abc"))
	if m.States() != 3 {
		t.Fatalf("States = %d, want 3", m.States())
	}
	if m.Initial() != 0 {
		t.Errorf("Initial = %d, want 0", m.Initial())
	}
	want := []Action{
		{Kind: GoTo, Next: 1},
		{Kind: GoTo, Next: 2},
		{Kind: Accept, Rule: 0},
	}
	for s, c := range []byte("abc") {
		if got := m.Action(s, c); got != want[s] {
			t.Errorf("Action(%d, %q) = %v, want %v", s, c, got, want[s])
		}
	}
}

func TestTableActionKinds(t *testing.T) {
	// rule 0: "ab", rule 1: "a"
	m := compile(t, Literal("ab"), is('a'))
	first := m.Action(m.Initial(), 'a')
	if first.Kind != AcceptAndGoto || first.Rule != 1 {
		t.Fatalf("Action(initial, 'a') = %v, want AcceptAndGoto(1, _)", first)
	}
	if got := m.Action(first.Next, 'b'); got.Kind != Accept || got.Rule != 0 {
		t.Errorf("Action(after a, 'b') = %v, want Accept(0)", got)
	}
	if got := m.Action(first.Next, 'a'); got.Kind != Failure {
		t.Errorf("Action(after a, 'a') = %v, want Failure", got)
	}
}

func TestTableEqualSetsCollapse(t *testing.T) {
	// Both "xa" and "ya" lead to the live set {2}.
	m := compile(t, is('x').Or(is('y')).And(is('a')).And(is('z')))
	x := m.Action(m.Initial(), 'x')
	y := m.Action(m.Initial(), 'y')
	if x.Kind != GoTo || y.Kind != GoTo || x.Next != y.Next {
		t.Errorf("x -> %v, y -> %v, want the same GoTo", x, y)
	}
	if m.States() != 3 {
		t.Errorf("States = %d, want 3", m.States())
	}
}

func TestTableEmptyInitialState(t *testing.T) {
	m := compile(t, Empty())
	if m.States() != 1 {
		t.Fatalf("States = %d, want 1", m.States())
	}
	for c := 0; c < alphabetSize; c++ {
		if a := m.Action(m.Initial(), byte(c)); a.Kind != Failure {
			t.Fatalf("Action(initial, %d) = %v, want Failure", c, a)
		}
	}
	if r, ok := m.NullableRule(); !ok || r != 0 {
		t.Errorf("NullableRule = %d, %v", r, ok)
	}
	got, ok := m.FindString("abc")
	if !ok || got != (Match{Rule: 0, End: 0}) {
		t.Errorf("Find = %v, %v", got, ok)
	}
}

func TestTableNullableRuleIsLowest(t *testing.T) {
	m := compile(t, is('a'), is('b').Star(), is('c').Optional())
	if r, ok := m.NullableRule(); !ok || r != 1 {
		t.Errorf("NullableRule = %d, %v, want 1", r, ok)
	}
	m = compile(t, is('a'), is('b'))
	if _, ok := m.NullableRule(); ok {
		t.Errorf("no rule is nullable")
	}
}

func TestStateLimit(t *testing.T) {
	rules := []*Expression{Literal("abcdefgh")}
	if _, err := Compile(rules, WithStateLimit(8)); err != nil {
		t.Fatalf("8 states should fit: %v", err)
	}
	_, err := Compile(rules, WithStateLimit(4))
	if !errors.Is(err, ErrStateLimit) {
		t.Errorf("error = %v, want ErrStateLimit", err)
	}
}

func TestPredicateEvaluatedOncePerByte(t *testing.T) {
	calls := 0
	p := PredicateFunc(func(b byte) bool {
		calls++
		return b == 'a'
	})
	leaf := Satisfy(p)
	compile(t, leaf.Star().And(leaf))
	if calls != 2*alphabetSize {
		t.Errorf("predicate called %d times, want %d", calls, 2*alphabetSize)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Action{}, "Failure"},
		{Action{Kind: GoTo, Next: 3}, "GoTo(3)"},
		{Action{Kind: Accept, Rule: 1}, "Accept(1)"},
		{Action{Kind: AcceptAndGoto, Rule: 2, Next: 5}, "AcceptAndGoto(2, 5)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
