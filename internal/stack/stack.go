// Package stack implements a basic generic stack.
package stack

type Stack[T any] struct {
	items []T
	zero  T
}

func New[T any](items ...T) *Stack[T] {
	result := &Stack[T]{}
	result.items = make([]T, len(items))
	copy(result.items, items)
	return result
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Items returns stacked items from bottom to top.
// The returned slice aliases internal storage and must not be modified.
func (s *Stack[T]) Items() []T {
	return s.items
}

func (s *Stack[T]) Push(item T) *Stack[T] {
	s.items = append(s.items, item)
	return s
}

// Pop removes and returns the top item, if any.
func (s *Stack[T]) Pop() (T, bool) {
	l := len(s.items)
	if l == 0 {
		return s.zero, false
	}

	result := s.items[l-1]
	s.items[l-1] = s.zero
	s.items = s.items[:l-1]
	return result, true
}

// Top returns a pointer to the top item, nil if the stack is empty.
// The pointer is valid until the next Push or Pop.
func (s *Stack[T]) Top() *T {
	l := len(s.items)
	if l == 0 {
		return nil
	}

	return &s.items[l-1]
}

func (s *Stack[T]) Clear() {
	for i := range s.items {
		s.items[i] = s.zero
	}
	s.items = s.items[:0]
}
