package validator

import "github.com/specialistvlad/flowgraph/internal/graph"

type color int

const (
	white color = iota // unvisited
	gray               // on the current DFS path
	black              // finished
)

// checkCycles walks every node in sorted order and stops at the first back
// edge. Only declared nodes are traversed; edges to undeclared identifiers
// are the missing check's concern.
func checkCycles(g *graph.Graph) *CircularDependencyError {
	colors := make(map[string]color, g.Len())
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		colors[id] = gray
		stack = append(stack, id)

		for _, next := range g.Successors(id) {
			if !g.HasNode(next) {
				continue
			}
			switch colors[next] {
			case gray:
				return cyclePath(stack, next)
			case white:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}

		stack = stack[:len(stack)-1]
		colors[id] = black
		return nil
	}

	for _, id := range g.IDs() {
		if colors[id] != white {
			continue
		}
		if cycle := visit(id); cycle != nil {
			return &CircularDependencyError{Cycle: cycle}
		}
	}
	return nil
}

// cyclePath cuts the DFS stack at the first occurrence of start and closes
// the loop.
func cyclePath(stack []string, start string) []string {
	for i, id := range stack {
		if id == start {
			cycle := append([]string(nil), stack[i:]...)
			return append(cycle, start)
		}
	}
	return []string{start, start}
}
