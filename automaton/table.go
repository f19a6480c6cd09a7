package automaton

import "fmt"

// ActionKind is the outcome class of one table cell.
type ActionKind uint8

const (
	Failure ActionKind = iota
	GoTo
	Accept
	AcceptAndGoto
)

func (k ActionKind) String() string {
	switch k {
	case Failure:
		return "Failure"
	case GoTo:
		return "GoTo"
	case Accept:
		return "Accept"
	case AcceptAndGoto:
		return "AcceptAndGoto"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is the deterministic result of consuming one byte in one state.
// Rule is meaningful for Accept and AcceptAndGoto, Next for GoTo and
// AcceptAndGoto. The zero value is Failure.
type Action struct {
	Kind ActionKind
	Rule int
	Next int
}

func (a Action) String() string {
	switch a.Kind {
	case GoTo:
		return fmt.Sprintf("GoTo(%d)", a.Next)
	case Accept:
		return fmt.Sprintf("Accept(%d)", a.Rule)
	case AcceptAndGoto:
		return fmt.Sprintf("AcceptAndGoto(%d, %d)", a.Rule, a.Next)
	}
	return "Failure"
}

// materialize numbers the states in ascending key order and flattens the
// automaton into a dense table indexed by state<<8 | byte.
func (a *positionAutomaton) materialize() (table []Action, initial int) {
	ids := make(map[string]int, a.states.Size())
	for i, k := range a.states.Keys() {
		ids[k] = i
	}

	table = make([]Action, a.states.Size()*alphabetSize)
	it := a.states.Iterator()
	for it.Next() {
		id := ids[it.Key()]
		row := table[id*alphabetSize : (id+1)*alphabetSize]
		for b, t := range it.Value().row {
			row[b] = actionOf(t, ids)
		}
	}
	return table, ids[a.initial]
}

func actionOf(t transition, ids map[string]int) Action {
	switch {
	case t.accept < 0 && t.key == "":
		return Action{Kind: Failure}
	case t.key == "":
		return Action{Kind: Accept, Rule: t.accept}
	case t.accept < 0:
		return Action{Kind: GoTo, Next: ids[t.key]}
	default:
		return Action{Kind: AcceptAndGoto, Rule: t.accept, Next: ids[t.key]}
	}
}
