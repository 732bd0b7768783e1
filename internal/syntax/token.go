package syntax

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Kind identifies a token class.
type Kind int

const (
	EOF      Kind = iota
	Dollar        // $
	LBracket      // [
	RBracket      // ]
	LBrace        // {
	RBrace        // }
	DepOpen       // #{
	Bang          // !
	Comma         // ,
	Ident
)

var kindNames = map[Kind]string{
	EOF:      "end of input",
	Dollar:   "'$'",
	LBracket: "'['",
	RBracket: "']'",
	LBrace:   "'{'",
	RBrace:   "'}'",
	DepOpen:  "'#{'",
	Bang:     "'!'",
	Comma:    "','",
	Ident:    "identifier",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme with its position in the source.
type Token struct {
	Kind  Kind
	Text  string
	Range hcl.Range
}

// describe renders the token for "found ..." messages.
func (t Token) describe() string {
	if t.Kind == Ident {
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return t.Kind.String()
}
