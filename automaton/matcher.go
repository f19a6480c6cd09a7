package automaton

import (
	"fmt"
	"io"
)

// Matcher is a compiled rule set. It is immutable and safe for concurrent
// use by multiple goroutines.
type Matcher struct {
	table    []Action
	states   int
	initial  int
	nullable int
	rules    int
}

// Match is the longest accepted prefix of an input: bytes [Start, End)
// were accepted by rule Rule. Start is always 0.
type Match struct {
	Rule  int
	Start int
	End   int
}

func (m Match) Len() int { return m.End - m.Start }

func (m Match) String() string {
	return fmt.Sprintf("rule %d [%d:%d]", m.Rule, m.Start, m.End)
}

// Find returns the longest prefix of input accepted by any rule. ok is
// false when no prefix, not even the empty one, is accepted.
func (m *Matcher) Find(input []byte) (match Match, ok bool) {
	s := m.NewScanner()
	s.Push(input)
	return s.Result()
}

func (m *Matcher) FindString(input string) (Match, bool) {
	s := m.NewScanner()
	for i := 0; i < len(input) && !s.done; i++ {
		s.step(input[i])
	}
	return s.Result()
}

const readChunk = 64 << 10

// FindReader is Find over a stream. Reading stops as soon as the scan
// terminates; at most one chunk is read past the deciding byte.
func (m *Matcher) FindReader(r io.Reader) (Match, bool, error) {
	s := m.NewScanner()
	buf := make([]byte, readChunk)
	for !s.done {
		n, err := r.Read(buf)
		s.Push(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			match, ok := s.Result()
			return match, ok, err
		}
	}
	match, ok := s.Result()
	return match, ok, nil
}

// States is the number of rows in the transition table.
func (m *Matcher) States() int { return m.states }

// Rules is the number of rules the matcher was compiled from.
func (m *Matcher) Rules() int { return m.rules }

// Initial is the id of the start state.
func (m *Matcher) Initial() int { return m.initial }

// NullableRule returns the lowest rule that accepts the empty input.
func (m *Matcher) NullableRule() (int, bool) {
	return m.nullable, m.nullable >= 0
}

// Action returns the table cell for state and b.
func (m *Matcher) Action(state int, b byte) Action {
	return m.table[state*alphabetSize+int(b)]
}
