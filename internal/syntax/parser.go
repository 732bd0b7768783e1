package syntax

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/flowgraph/internal/ast"
)

// DefaultMaxDepth bounds composite nesting when no WithMaxDepth option is
// given.
const DefaultMaxDepth = 1024

// Option configures Parse.
type Option func(*parser)

// WithMaxDepth sets the deepest allowed nesting of nodes. Values below one
// select DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parse lexes and parses src into a program. filename is only used for
// source ranges.
func Parse(filename string, src []byte, opts ...Option) (*ast.Program, error) {
	toks, err := Lex(filename, src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	body, err := p.program()
	if err != nil {
		return nil, err
	}
	return &ast.Program{Filename: filename, Body: body}, nil
}

// ParseString is a convenience wrapper for tests and inline input.
func ParseString(src string, opts ...Option) (*ast.Program, error) {
	return Parse("", []byte(src), opts...)
}

type parser struct {
	toks     []Token
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

// expect consumes a token of the given kind or fails with the supplied
// list of acceptable alternatives.
func (p *parser) expect(kind Kind, expected ...string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		if len(expected) == 0 {
			expected = []string{kind.String()}
		}
		return Token{}, p.unexpected(tok, expected...)
	}
	return p.advance(), nil
}

func (p *parser) unexpected(tok Token, expected ...string) *SyntaxError {
	return &SyntaxError{Subject: tok.Range, Expected: expected, Found: tok.describe()}
}

func (p *parser) program() (*ast.Sequence, error) {
	open, err := p.expect(Dollar)
	if err != nil {
		return nil, err
	}
	children, err := p.nodeList(Dollar)
	if err != nil {
		return nil, err
	}
	closing := p.advance() // nodeList guarantees the closing '$'
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return &ast.Sequence{
		Children: children,
		Range:    hcl.RangeBetween(open.Range, closing.Range),
	}, nil
}

// nodeList parses one or more comma-separated nodes and stops in front of
// the closer token, which is left for the caller to consume.
func (p *parser) nodeList(closer Kind) ([]ast.Node, error) {
	var nodes []ast.Node
	for {
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)

		switch p.peek().Kind {
		case Comma:
			p.advance()
			continue
		case closer:
			return nodes, nil
		}

		expected := []string{Comma.String(), closer.String()}
		d := n.Decor()
		if !d.Terminal {
			expected = append([]string{Bang.String()}, expected...)
			if len(d.Deps) == 0 {
				expected = append([]string{DepOpen.String()}, expected...)
			}
		}
		return nil, p.unexpected(p.peek(), expected...)
	}
}

func (p *parser) node() (ast.Node, error) {
	tok := p.peek()
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, &DepthLimitError{Limit: p.maxDepth, Subject: tok.Range}
	}

	var n ast.Node
	switch tok.Kind {
	case Ident:
		p.advance()
		n = &ast.Atomic{ID: tok.Text, Range: tok.Range}

	case LBracket, LBrace:
		p.advance()
		closer := RBracket
		if tok.Kind == LBrace {
			closer = RBrace
		}
		children, err := p.nodeList(closer)
		if err != nil {
			return nil, err
		}
		end := p.advance()
		rng := hcl.RangeBetween(tok.Range, end.Range)
		if tok.Kind == LBracket {
			n = &ast.Sequence{Children: children, Range: rng}
		} else {
			n = &ast.Parallel{Children: children, Range: rng}
		}

	default:
		return nil, p.unexpected(tok, Ident.String(), LBracket.String(), LBrace.String())
	}

	if err := p.decoration(n.Decor()); err != nil {
		return nil, err
	}
	return n, nil
}

// decoration parses the optional `#{...}` and `!` suffixes.
func (p *parser) decoration(d *ast.Decoration) error {
	if p.peek().Kind == DepOpen {
		p.advance()
		seen := make(map[string]struct{})
		for {
			tok, err := p.expect(Ident)
			if err != nil {
				return err
			}
			if _, dup := seen[tok.Text]; !dup {
				seen[tok.Text] = struct{}{}
				d.Deps = append(d.Deps, ast.Ref{ID: tok.Text, Range: tok.Range})
			}
			if p.peek().Kind != Comma {
				break
			}
			p.advance()
		}
		if _, err := p.expect(RBrace, Comma.String(), RBrace.String()); err != nil {
			return err
		}
	}

	if p.peek().Kind == Bang {
		p.advance()
		d.Terminal = true
	}
	return nil
}
