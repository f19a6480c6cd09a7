package ebnflex

import (
	"strings"
	"testing"

	"github.com/dhamidi/bytelex/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileGrammar(t *testing.T, src string, names ...string) *automaton.Matcher {
	t.Helper()
	g, err := ParseGrammar("test.ebnf", strings.NewReader(src))
	require.NoError(t, err)
	rules, err := Rules(g, names...)
	require.NoError(t, err)
	m, err := automaton.Compile(rules)
	require.NoError(t, err)
	return m
}

func TestRulesExpressions(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		input   string
		ok      bool
		end     int
	}{
		{"token", `A = "abc" .`, "abcd", true, 3},
		{"range", `A = "a" … "c" .`, "b", true, 1},
		{"range miss", `A = "a" … "c" .`, "d", false, 0},
		{"sequence", `A = "a" "b" .`, "abab", true, 2},
		{"alternative", `A = "a" | "bb" .`, "bbb", true, 2},
		{"group", `A = ( "a" | "b" ) "c" .`, "bc", true, 2},
		{"option", `A = "a" [ "b" ] "c" .`, "ac", true, 2},
		{"option taken", `A = "a" [ "b" ] "c" .`, "abc", true, 3},
		{"repetition", `A = "x" { "ab" } .`, "xababa", true, 5},
		{"empty production", `A = .`, "zzz", true, 0},
		{"name", `A = b "!" . b = "b" { "b" } .`, "bbb!", true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := compileGrammar(t, tt.grammar, "A")
			got, ok := m.FindString(tt.input)
			require.Equal(t, tt.ok, ok, "match %v", got)
			if ok {
				assert.Equal(t, automaton.Match{Rule: 0, End: tt.end}, got)
			}
		})
	}
}

func TestRulesSharedProduction(t *testing.T) {
	m := compileGrammar(t, `
		Pair = digit digit .
		Single = digit .
		digit = "0" … "9" .
	`, "Single", "Pair")

	got, ok := m.FindString("42")
	require.True(t, ok)
	assert.Equal(t, automaton.Match{Rule: 1, End: 2}, got)

	got, ok = m.FindString("4")
	require.True(t, ok)
	assert.Equal(t, automaton.Match{Rule: 0, End: 1}, got)
}

func TestRulesErrors(t *testing.T) {
	g, err := ParseGrammar("test.ebnf", strings.NewReader(`
		A = "a" A | "a" .
		B = c .
		C = "ab" … "c" .
	`))
	require.NoError(t, err)

	_, err = Rules(g, "A")
	assert.ErrorIs(t, err, ErrRecursive)

	_, err = Rules(g, "B")
	assert.ErrorIs(t, err, ErrUnknownProduction)

	_, err = Rules(g, "C")
	assert.ErrorIs(t, err, ErrBadRange)

	_, err = Rules(g, "Missing")
	assert.ErrorIs(t, err, ErrUnknownProduction)
}

func TestNewSpecErrors(t *testing.T) {
	g, err := ParseGrammar("test.ebnf", strings.NewReader(`lower = "a" .`))
	require.NoError(t, err)

	_, err = NewSpec(g, nil)
	assert.ErrorIs(t, err, ErrNoTokens)

	spec, err := NewSpec(g, []string{"lower"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lower"}, spec.Names)

	g, err = ParseGrammar("test.ebnf", strings.NewReader(`Word = "abcdefgh" .`))
	require.NoError(t, err)
	_, err = NewSpec(g, nil, automaton.WithStateLimit(2))
	assert.ErrorIs(t, err, automaton.ErrStateLimit)
}
