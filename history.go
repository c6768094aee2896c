package easel

// strokeStack is an ordered collection of strokes with push/pop semantics.
// The canvas keeps two of them: the history of committed strokes and the
// redo buffer holding strokes removed by undo.
type strokeStack struct {
	items []Stroke
}

func (s *strokeStack) push(st Stroke) {
	s.items = append(s.items, st)
}

// pop removes and returns the most recent stroke.
// The second return is false when the stack is empty.
func (s *strokeStack) pop() (Stroke, bool) {
	if len(s.items) == 0 {
		return Stroke{}, false
	}
	st := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return st, true
}

func (s *strokeStack) len() int {
	return len(s.items)
}

func (s *strokeStack) clear() {
	s.items = s.items[:0]
}

// snapshot returns a copy of the stack contents in push order.
func (s *strokeStack) snapshot() []Stroke {
	out := make([]Stroke, len(s.items))
	for i, st := range s.items {
		st.Points = clonePoints(st.Points)
		out[i] = st
	}
	return out
}
