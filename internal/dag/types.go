package dag

// idSet is an insertion-ordered set of identifiers. Order does not affect
// the resulting graph but keeps debug logs stable.
type idSet struct {
	ids  []string
	seen map[string]struct{}
}

func newIDSet(ids ...string) *idSet {
	s := &idSet{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *idSet) add(id string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) union(other *idSet) {
	for _, id := range other.ids {
		s.add(id)
	}
}

func (s *idSet) len() int { return len(s.ids) }

// fragment is the externally visible shape of a subtree: entry receives
// edges from whatever precedes it, exit sends edges to whatever follows.
type fragment struct {
	entry *idSet
	exit  *idSet
}
