package input

// ListSet is an insertion-ordered set
// Add ignores duplicates, Remove ignores absent items, order of the rest is kept
type ListSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewListSet creates an empty ListSet
func NewListSet[T comparable]() *ListSet[T] {
	return &ListSet[T]{
		items: make([]T, 0, 4),
		index: make(map[T]struct{}, 4),
	}
}

// Add appends item if not already present, returns true if added
func (s *ListSet[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// MoveToBack makes item the last entry, appending it if absent
func (s *ListSet[T]) MoveToBack(item T) {
	s.Remove(item)
	s.Add(item)
}

// Remove deletes item if present, returns true if removed
func (s *ListSet[T]) Remove(item T) bool {
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)
	for i, v := range s.items {
		if v == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports membership
func (s *ListSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of items
func (s *ListSet[T]) Len() int {
	return len(s.items)
}

// At returns the item at position i in insertion order
func (s *ListSet[T]) At(i int) T {
	return s.items[i]
}

// Last returns the most recently added item still present
func (s *ListSet[T]) Last() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Items returns a copy of the items in insertion order
func (s *ListSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes all items
func (s *ListSet[T]) Clear() {
	s.items = s.items[:0]
	clear(s.index)
}
