package automaton

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoRules       = errors.New("no rules")
	ErrNilExpression = errors.New("nil expression")
	ErrStateLimit    = errors.New("state limit exceeded")
)

var log = commonlog.GetLogger("bytelex.automaton")

type Option func(*compiler)

// WithLogger replaces the package logger for one compilation.
func WithLogger(logger commonlog.Logger) Option {
	return func(c *compiler) {
		c.log = logger
	}
}

// WithConcurrency bounds how many rule manifests are computed in
// parallel. Values below 1 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *compiler) {
		c.concurrency = n
	}
}

// WithStateLimit makes Compile fail with ErrStateLimit when more than n
// states are reachable. Zero, the default, means no limit.
func WithStateLimit(n int) Option {
	return func(c *compiler) {
		c.stateLimit = n
	}
}

type compiler struct {
	log         commonlog.Logger
	concurrency int
	stateLimit  int
}

// Compile builds a matcher for rules. The rule at index i has id i, and
// lower ids win when several rules accept the same prefix.
//
// The number of states is bounded only by the position subsets actually
// reachable, which can grow exponentially with the number of positions
// for adversarial rule sets. Use WithStateLimit to cap it.
func Compile(rules []*Expression, opts ...Option) (*Matcher, error) {
	c := &compiler{log: log}
	for _, opt := range opts {
		opt(c)
	}
	if c.concurrency < 1 {
		c.concurrency = runtime.GOMAXPROCS(0)
	}

	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("rule %d: %w", i, ErrNilExpression)
		}
	}

	fragments := make([]Fragment, len(rules))
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, r := range rules {
		i, r := i, r
		g.Go(func() error {
			fragments[i] = r.Fragment()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	root := fragments[0]
	lasts := make([]PositionSet, len(rules))
	lasts[0] = root.Last
	nullable := -1
	if root.Nullable {
		nullable = 0
	}
	for i := 1; i < len(fragments); i++ {
		lasts[i] = fragments[i].Last.Offset(len(root.Terminals))
		root = root.Or(fragments[i])
		if nullable < 0 && fragments[i].Nullable {
			nullable = i
		}
	}
	c.log.Debugf("merged %d rules into %d positions", len(rules), len(root.Terminals))

	nfa, err := buildPositionAutomaton(root, lasts, c.stateLimit)
	if err != nil {
		return nil, fmt.Errorf("build automaton: %w", err)
	}

	table, initial := nfa.materialize()
	m := &Matcher{
		table:    table,
		states:   len(table) / alphabetSize,
		initial:  initial,
		nullable: nullable,
		rules:    len(rules),
	}
	c.log.Infof("compiled %d rules into %d states", m.rules, m.states)
	return m, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(rules ...*Expression) *Matcher {
	m, err := Compile(rules)
	if err != nil {
		panic("automaton: Compile: " + err.Error())
	}
	return m
}
