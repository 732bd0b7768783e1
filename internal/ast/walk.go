package ast

import "fmt"

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Atomic:
	case *Sequence:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case *Parallel:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Atomics returns every atomic node below n in program order.
func Atomics(n Node) []*Atomic {
	var out []*Atomic
	Walk(n, func(n Node) bool {
		if a, ok := n.(*Atomic); ok {
			out = append(out, a)
		}
		return true
	})
	return out
}

// Depth returns the nesting depth of n. An atomic node has depth 1.
func Depth(n Node) int {
	var children []Node
	switch v := n.(type) {
	case *Atomic:
		return 1
	case *Sequence:
		children = v.Children
	case *Parallel:
		children = v.Children
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
	deepest := 0
	for _, c := range children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
