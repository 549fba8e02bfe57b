package types

// OrderedSet is a string set that remembers first-insertion order. The
// report ordering rules (questions as selected, answers and categories
// by first appearance) all hang off this.
type OrderedSet struct {
	idx  map[string]int
	keys []string
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{idx: make(map[string]int)}
}

// Add inserts v if unseen and reports whether it was new.
func (s *OrderedSet) Add(v string) bool {
	if _, ok := s.idx[v]; ok {
		return false
	}
	s.idx[v] = len(s.keys)
	s.keys = append(s.keys, v)
	return true
}

func (s *OrderedSet) Has(v string) bool {
	_, ok := s.idx[v]
	return ok
}

// Keys returns the members in insertion order. The returned slice is
// shared; callers must not mutate it.
func (s *OrderedSet) Keys() []string { return s.keys }

func (s *OrderedSet) Len() int { return len(s.keys) }
