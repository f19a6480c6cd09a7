// Package automaton compiles byte-level rules into a deterministic
// transition table and finds the longest rule-accepted prefix of an input.
//
// # Rules
//
// Rules are built from byte predicates with a small combinator algebra:
//
//	ident := automaton.Satisfy(automaton.Alpha).And(automaton.Satisfy(automaton.Alnum).Star())
//	number := automaton.Satisfy(automaton.Digit).Plus()
//	m, err := automaton.Compile([]*automaton.Expression{ident, number})
//
// There is no textual syntax. Package ebnflex derives rules from EBNF
// grammars.
//
// # Construction
//
// Compilation follows the Glushkov (Berry–Sethi) position construction:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ Expression  │────▶│  Manifest   │────▶│  Position   │────▶│   Table     │
//	│   trees     │     │ first/last/ │     │  automaton  │     │ [state][b]  │
//	│             │     │   follow    │     │ (pos sets)  │     │  -> Action  │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//
// Every predicate leaf becomes a position. Each rule's manifest is computed
// in its own position space (concurrently), then the rules are merged into
// one alternation, offsetting positions so they are globally unique. A
// state of the automaton is the set of positions that may match the next
// byte; states are discovered breadth first from the first set of the
// alternation and numbered in sorted order.
//
// # Matching
//
// Find scans from offset 0 and never skips bytes. It keeps scanning past
// accepting points and reports the longest accepted prefix together with
// the rule that accepted it. When several rules accept at the same byte,
// the rule with the lowest index wins. Matching takes time linear in the
// consumed input and constant extra memory; Scanner and FindReader apply
// it to streams of any size.
package automaton
