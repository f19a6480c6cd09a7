package ebnflex

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/bytelex/automaton"
	"golang.org/x/exp/ebnf"
)

var (
	ErrUnknownProduction = errors.New("unknown production")
	ErrRecursive         = errors.New("recursive production")
	ErrBadRange          = errors.New("range bounds must be single bytes")
	ErrNoTokens          = errors.New("grammar has no token productions")
)

// TokenNames returns the productions that define tokens: those whose name
// starts with an upper-case letter, in the order they are declared.
func TokenNames(g ebnf.Grammar) []string {
	var prods []*ebnf.Production
	for name, prod := range g {
		r, _ := utf8.DecodeRuneInString(name)
		if unicode.IsUpper(r) {
			prods = append(prods, prod)
		}
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})

	names := make([]string, len(prods))
	for i, prod := range prods {
		names[i] = prod.Name.String
	}
	return names
}

// Rules converts the named productions into rule expressions, in the order
// given. Referenced productions are expanded in place, so the grammar must
// be regular: a production that refers back to itself is rejected.
func Rules(g ebnf.Grammar, names ...string) ([]*automaton.Expression, error) {
	c := &converter{
		grammar:  g,
		done:     make(map[string]*automaton.Expression),
		visiting: make(map[string]bool),
	}
	rules := make([]*automaton.Expression, len(names))
	for i, name := range names {
		e, err := c.production(name)
		if err != nil {
			return nil, err
		}
		rules[i] = e
	}
	return rules, nil
}

type converter struct {
	grammar  ebnf.Grammar
	done     map[string]*automaton.Expression
	visiting map[string]bool
}

func (c *converter) production(name string) (*automaton.Expression, error) {
	if e, ok := c.done[name]; ok {
		return e, nil
	}
	prod, ok := c.grammar[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduction, name)
	}
	if c.visiting[name] {
		return nil, fmt.Errorf("%s: %w: %s", prod.Pos(), ErrRecursive, name)
	}

	c.visiting[name] = true
	e, err := c.expr(prod.Expr)
	delete(c.visiting, name)
	if err != nil {
		return nil, err
	}

	c.done[name] = e
	return e, nil
}

func (c *converter) expr(expr ebnf.Expression) (*automaton.Expression, error) {
	switch e := expr.(type) {
	case nil:
		return automaton.Empty(), nil

	case *ebnf.Token:
		return automaton.Literal(e.String), nil

	case *ebnf.Range:
		if len(e.Begin.String) != 1 || len(e.End.String) != 1 {
			return nil, fmt.Errorf("%s: %w", e.Pos(), ErrBadRange)
		}
		return automaton.Satisfy(automaton.Range(e.Begin.String[0], e.End.String[0])), nil

	case ebnf.Sequence:
		items, err := c.list(e)
		if err != nil {
			return nil, err
		}
		return automaton.Seq(items...), nil

	case ebnf.Alternative:
		items, err := c.list(e)
		if err != nil {
			return nil, err
		}
		return automaton.Alt(items...), nil

	case *ebnf.Group:
		return c.expr(e.Body)

	case *ebnf.Option:
		body, err := c.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return body.Optional(), nil

	case *ebnf.Repetition:
		body, err := c.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return body.Star(), nil

	case *ebnf.Name:
		return c.production(e.String)

	default:
		return nil, fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr)
	}
}

func (c *converter) list(exprs []ebnf.Expression) ([]*automaton.Expression, error) {
	out := make([]*automaton.Expression, len(exprs))
	for i, x := range exprs {
		e, err := c.expr(x)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// Spec is a compiled set of token rules.
type Spec struct {
	Names   []string
	Matcher *automaton.Matcher
}

// NewSpec compiles the named productions of g. Without names, every token
// production is used (see TokenNames).
func NewSpec(g ebnf.Grammar, names []string, opts ...automaton.Option) (*Spec, error) {
	if len(names) == 0 {
		names = TokenNames(g)
	}
	if len(names) == 0 {
		return nil, ErrNoTokens
	}
	rules, err := Rules(g, names...)
	if err != nil {
		return nil, fmt.Errorf("convert grammar: %w", err)
	}
	m, err := automaton.Compile(rules, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}
	log.Debugf("compiled %d token rules into %d states", len(names), m.States())
	return &Spec{Names: names, Matcher: m}, nil
}
