package automaton

// Scanner runs a Matcher incrementally over input delivered in chunks.
// It keeps only the current state and the best match so far. A Scanner
// must not be used from several goroutines at once.
type Scanner struct {
	m       *Matcher
	state   int
	offset  int
	best    Match
	matched bool
	done    bool
}

func (m *Matcher) NewScanner() *Scanner {
	s := &Scanner{m: m}
	s.Reset()
	return s
}

// Reset rewinds the scanner to offset 0.
func (s *Scanner) Reset() {
	s.state = s.m.initial
	s.offset = 0
	s.done = false
	s.best = Match{}
	s.matched = false
	if r, ok := s.m.NullableRule(); ok {
		s.best = Match{Rule: r}
		s.matched = true
	}
}

// Push feeds the next chunk of input. It reports whether the scanner can
// still consume input; once it returns false further chunks are ignored.
func (s *Scanner) Push(chunk []byte) bool {
	for i := 0; i < len(chunk) && !s.done; i++ {
		s.step(chunk[i])
	}
	return !s.done
}

func (s *Scanner) step(b byte) {
	a := s.m.table[s.state*alphabetSize+int(b)]
	switch a.Kind {
	case Failure:
		s.done = true
		return
	case Accept:
		s.best = Match{Rule: a.Rule, End: s.offset + 1}
		s.matched = true
		s.done = true
	case AcceptAndGoto:
		s.best = Match{Rule: a.Rule, End: s.offset + 1}
		s.matched = true
		s.state = a.Next
	case GoTo:
		s.state = a.Next
	}
	s.offset++
}

// Done reports whether the scan has terminated before the end of input.
func (s *Scanner) Done() bool { return s.done }

// Offset is the number of bytes consumed so far.
func (s *Scanner) Offset() int { return s.offset }

// Result returns the longest match seen so far.
func (s *Scanner) Result() (Match, bool) {
	return s.best, s.matched
}
