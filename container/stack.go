package container

import (
	"fmt"
	"iter"
)

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top    *node[T] // most recently pushed node, bottom when empty
	bottom *node[T] // sentinel
	size   int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	s := &Stack[T]{}
	s.init()
	return s
}

// init allocates the sentinel on first use so that the zero value works.
func (s *Stack[T]) init() {
	if s.bottom == nil {
		s.bottom = &node[T]{}
		s.top = s.bottom
	}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// Push places a new element on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.init()
	s.top = &node[T]{value: item, next: s.top}
	s.size++
}

// Pop removes and returns the topmost element of the stack.
func (s *Stack[T]) Pop() (item T, err error) {
	if s.IsEmpty() {
		return item, fmt.Errorf("pop: %w", ErrEmptyContainer)
	}

	popped := s.top
	s.top = popped.next
	popped.next = nil
	s.size--

	return popped.value, nil
}

// Peek returns the topmost element without removing it.
func (s *Stack[T]) Peek() (item T, err error) {
	if s.IsEmpty() {
		return item, fmt.Errorf("peek: %w", ErrEmptyContainer)
	}
	return s.top.value, nil
}

// SubStack returns a new stack holding the top n elements in the same order,
// so that its top equals the top of s. The source is never modified. If s
// holds fewer than n elements, nothing is allocated and ErrInvalidArgument is
// returned.
func (s *Stack[T]) SubStack(n int) (*Stack[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("sub-stack of %d elements: %w", n, ErrInvalidArgument)
	}

	reached := 0
	for cursor := s.top; cursor != s.bottom && reached < n; cursor = cursor.next {
		reached++
	}
	if reached < n {
		return nil, fmt.Errorf("sub-stack of %d elements, only %d available: %w", n, reached, ErrInvalidArgument)
	}

	buffer := make([]T, n)
	cursor := s.top
	for i := range buffer {
		buffer[i] = cursor.value
		cursor = cursor.next
	}

	sub := NewStack[T]()
	for i := n - 1; i >= 0; i-- {
		sub.Push(buffer[i])
	}

	return sub, nil
}

// All returns an iterator over the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cursor := s.top; cursor != s.bottom; cursor = cursor.next {
			if !yield(cursor.value) {
				return
			}
		}
	}
}
