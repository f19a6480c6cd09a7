// Package ebnflex provides lexical scanning based on EBNF grammars.
package ebnflex

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("bytelex.ebnflex")

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

type LexerOption func(*Lexer)

// WithSkip drops tokens of the given kinds from the token stream.
func WithSkip(kinds ...string) LexerOption {
	return func(l *Lexer) {
		for _, k := range kinds {
			l.skip[k] = true
		}
	}
}

// Lexer tokenizes input with a compiled Spec. Each token is the longest
// prefix of the remaining input accepted by a rule; ties go to the rule
// listed first.
type Lexer struct {
	spec     *Spec
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	skip     map[string]bool
}

// NewLexer creates a lexer for the given spec and input.
func NewLexer(spec *Spec, input []byte, filename string, opts ...LexerOption) *Lexer {
	l := &Lexer{
		spec:     spec,
		input:    input,
		filename: filename,
		pos:      0,
		line:     1,
		column:   1,
		skip:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar parses an EBNF grammar from r.
func ParseGrammar(filename string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token from the input. Input that no rule
// accepts, or that is only accepted as an empty match, becomes a one byte
// ERROR token.
func (l *Lexer) NextToken() (Token, error) {
	for {
		tok, err := l.scan()
		if err != nil || !l.skip[tok.Kind] {
			return tok, err
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	match, ok := l.spec.Matcher.Find(l.input[l.pos:])
	if !ok || match.Len() == 0 {
		ch := l.advance()
		log.Debugf("%s: no token at %q", startPos, ch)
		return Token{
			Kind:     KindError,
			Literal:  string(ch),
			Position: startPos,
		}, nil
	}

	literal := string(l.input[l.pos : l.pos+match.End])
	for i := 0; i < match.End; i++ {
		l.advance()
	}

	return Token{
		Kind:     l.spec.Names[match.Rule],
		Literal:  literal,
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens from input. The last token is always EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
