package ast

import (
	"fmt"
	"strings"
)

// String renders the program in canonical form: no whitespace, children
// joined with ',' and decorations written as `#{a,b}` then `!`.
func (p *Program) String() string {
	if p == nil || p.Body == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('$')
	writeList(&sb, p.Body.Children)
	sb.WriteByte('$')
	return sb.String()
}

// Format renders a single node in canonical form.
func Format(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeList(sb *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNode(sb, n)
	}
}

func writeNode(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Atomic:
		sb.WriteString(v.ID)
	case *Sequence:
		sb.WriteByte('[')
		writeList(sb, v.Children)
		sb.WriteByte(']')
	case *Parallel:
		sb.WriteByte('{')
		writeList(sb, v.Children)
		sb.WriteByte('}')
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}

	d := n.Decor()
	if len(d.Deps) > 0 {
		sb.WriteString("#{")
		sb.WriteString(strings.Join(d.DepIDs(), ","))
		sb.WriteByte('}')
	}
	if d.Terminal {
		sb.WriteByte('!')
	}
}
