package automaton

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
)

// PositionSet is an ordered set of positions, kept as a sorted slice
// without duplicates. The zero value is the empty set.
type PositionSet []int

// NewPositionSet builds a set from arbitrary positions.
func NewPositionSet(positions ...int) PositionSet {
	if len(positions) == 0 {
		return nil
	}
	s := make(PositionSet, len(positions))
	copy(s, positions)
	sort.Ints(s)
	out := s[:1]
	for _, p := range s[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func (s PositionSet) Len() int { return len(s) }

func (s PositionSet) IsEmpty() bool { return len(s) == 0 }

func (s PositionSet) Contains(p int) bool {
	i := sort.SearchInts(s, p)
	return i < len(s) && s[i] == p
}

// Union returns s ∪ o as a new set. Neither operand is modified.
func (s PositionSet) Union(o PositionSet) PositionSet {
	if len(o) == 0 {
		return s.clone()
	}
	if len(s) == 0 {
		return o.clone()
	}
	out := make(PositionSet, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			out = append(out, s[i])
			i++
		case s[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, o[j:]...)
}

// Offset returns a copy of s with every position shifted by n.
func (s PositionSet) Offset(n int) PositionSet {
	if len(s) == 0 {
		return nil
	}
	out := make(PositionSet, len(s))
	for i, p := range s {
		out[i] = p + n
	}
	return out
}

func (s PositionSet) Equal(o PositionSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s PositionSet) clone() PositionSet {
	if len(s) == 0 {
		return nil
	}
	out := make(PositionSet, len(s))
	copy(out, s)
	return out
}

// key encodes s as fixed width big-endian words. Comparing keys as strings
// orders sets lexicographically by their sorted elements, shorter prefix
// first.
func (s PositionSet) key() string {
	buf := make([]byte, 4*len(s))
	for i, p := range s {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(p))
	}
	return string(buf)
}

func (s PositionSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('}')
	return b.String()
}
