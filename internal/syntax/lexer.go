package syntax

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/flowgraph/internal/nodeid"
)

var punctuation = map[rune]Kind{
	'$': Dollar,
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	'!': Bang,
	',': Comma,
}

// Lex splits src into tokens. The returned slice always ends with an EOF
// token. Lexing stops at the first character that cannot start a token.
func Lex(filename string, src []byte) ([]Token, error) {
	l := &lexer{filename: filename, src: src, pos: hcl.InitialPos}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

type lexer struct {
	filename string
	src      []byte
	pos      hcl.Pos
}

// peek returns the next rune without consuming it, or -1 at end of input.
func (l *lexer) peek() rune {
	if l.pos.Byte >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRune(l.src[l.pos.Byte:])
	return r
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRune(l.src[l.pos.Byte:])
	l.pos.Byte += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

func (l *lexer) rangeFrom(start hcl.Pos) hcl.Range {
	return hcl.Range{Filename: l.filename, Start: start, End: l.pos}
}

func (l *lexer) next() (Token, error) {
	for r := l.peek(); r != -1 && unicode.IsSpace(r); r = l.peek() {
		l.advance()
	}

	start := l.pos
	if l.pos.Byte >= len(l.src) {
		return Token{Kind: EOF, Range: l.rangeFrom(start)}, nil
	}

	r := l.advance()
	if kind, ok := punctuation[r]; ok {
		return Token{Kind: kind, Text: string(r), Range: l.rangeFrom(start)}, nil
	}

	switch {
	case r == '#':
		if l.peek() != '{' {
			found := "end of input"
			if next := l.peek(); next != -1 {
				found = fmt.Sprintf("%q", next)
			}
			return Token{}, &SyntaxError{
				Subject:  l.rangeFrom(start),
				Expected: []string{"'{' after '#'"},
				Found:    found,
			}
		}
		l.advance()
		return Token{Kind: DepOpen, Text: "#{", Range: l.rangeFrom(start)}, nil

	case nodeid.IsIdentRune(r):
		for nodeid.IsIdentRune(l.peek()) {
			l.advance()
		}
		text := string(l.src[start.Byte:l.pos.Byte])
		if _, err := nodeid.Parse(text); err != nil {
			return Token{}, &SyntaxError{Subject: l.rangeFrom(start), Found: err.Error()}
		}
		return Token{Kind: Ident, Text: text, Range: l.rangeFrom(start)}, nil
	}

	return Token{}, &SyntaxError{
		Subject:  l.rangeFrom(start),
		Expected: []string{"identifier", "one of $ [ ] { } #{ ! ,"},
		Found:    fmt.Sprintf("character %q", r),
	}
}
