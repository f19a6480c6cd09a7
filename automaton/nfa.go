package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
)

const alphabetSize = 256

// transition is the outcome of consuming one byte from a set of live
// positions, before states are numbered.
type transition struct {
	accept int // lowest accepting rule, -1 if none
	next   PositionSet
	key    string // next.key(), empty when next is empty
}

type nfaState struct {
	set PositionSet
	row [alphabetSize]transition
}

// positionAutomaton maps every reachable set of live positions to its
// transitions. States are kept sorted by their canonical key.
type positionAutomaton struct {
	initial string
	states  *treemap.Map[string, *nfaState]
}

type closure struct {
	terminals []Terminal
	classes   []byteClass
	owner     []int
	limit     int
}

// buildPositionAutomaton discovers every state reachable from root.First.
// lasts holds the globally numbered last set of each rule.
func buildPositionAutomaton(root Fragment, lasts []PositionSet, limit int) (*positionAutomaton, error) {
	c := &closure{
		terminals: root.Terminals,
		classes:   make([]byteClass, len(root.Terminals)),
		owner:     make([]int, len(root.Terminals)),
		limit:     limit,
	}
	for p, t := range root.Terminals {
		c.classes[p] = classOf(t.Predicate)
		c.owner[p] = -1
	}
	for rule, last := range lasts {
		for _, p := range last {
			if c.owner[p] < 0 {
				c.owner[p] = rule
			}
		}
	}

	a := &positionAutomaton{
		initial: root.First.key(),
		states:  treemap.New[string, *nfaState](),
	}
	a.states.Put(a.initial, &nfaState{set: root.First})

	queue := linkedlistqueue.New[string]()
	queue.Enqueue(a.initial)
	for !queue.Empty() {
		key, _ := queue.Dequeue()
		state, _ := a.states.Get(key)
		for _, next := range c.expand(state) {
			k := next.key()
			if _, seen := a.states.Get(k); seen {
				continue
			}
			if c.limit > 0 && a.states.Size() >= c.limit {
				return nil, fmt.Errorf("%w: more than %d states", ErrStateLimit, c.limit)
			}
			a.states.Put(k, &nfaState{set: next})
			queue.Enqueue(k)
		}
	}
	return a, nil
}

// expand fills the transition row of state and returns the non-empty
// successor sets it produced. Bytes that enable the same positions share
// one transition.
func (c *closure) expand(state *nfaState) []PositionSet {
	var successors []PositionSet
	memo := make(map[string]transition)
	matched := make(PositionSet, 0, len(state.set))

	for b := 0; b < alphabetSize; b++ {
		matched = matched[:0]
		for _, p := range state.set {
			if c.classes[p].has(byte(b)) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			state.row[b] = transition{accept: -1}
			continue
		}

		mk := matched.key()
		t, ok := memo[mk]
		if !ok {
			t = transition{accept: -1}
			for _, p := range matched {
				if r := c.owner[p]; r >= 0 && (t.accept < 0 || r < t.accept) {
					t.accept = r
				}
				t.next = t.next.Union(c.terminals[p].Follow)
			}
			if len(t.next) > 0 {
				t.key = t.next.key()
				successors = append(successors, t.next)
			}
			memo[mk] = t
		}
		state.row[b] = t
	}
	return successors
}
