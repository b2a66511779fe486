package container

import (
	"fmt"
	"iter"

	"github.com/samber/mo"
)

type (
	// Extractor maps an element to the number used by Queue.AverageOfPrefix.
	// mo.None marks an element with no value; it counts as 0.
	Extractor[T any] func(T) mo.Option[float64]

	// Predicate reports whether an element is kept by Queue.FilterPrefix.
	Predicate[T any] func(T) bool
)

// Extract lifts a plain numeric accessor into an Extractor that always yields a value.
func Extract[T any](f func(T) float64) Extractor[T] {
	return func(item T) mo.Option[float64] {
		return mo.Some(f(item))
	}
}

// Queue implements a parameterized First-In-First-Out (FIFO) data structure.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	front *node[T] // sentinel, the first element is front.next
	tail  *node[T] // last enqueued node, front when empty
	size  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.init()
	return q
}

func (q *Queue[T]) init() {
	if q.front == nil {
		q.front = &node[T]{}
		q.tail = q.front
	}
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// Enqueue puts the given value at the tail of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.init()
	slot := &node[T]{value: item}
	q.tail.next = slot
	q.tail = slot
	q.size++
}

// Dequeue removes and returns the value at the front of the queue.
func (q *Queue[T]) Dequeue() (item T, err error) {
	if q.IsEmpty() {
		return item, fmt.Errorf("dequeue: %w", ErrEmptyContainer)
	}

	first := q.front.next
	q.front.next = first.next
	if first == q.tail {
		q.tail = q.front
	}
	first.next = nil
	q.size--

	return first.value, nil
}

// Peek returns the value at the front of the queue without removing it.
func (q *Queue[T]) Peek() (item T, err error) {
	if q.IsEmpty() {
		return item, fmt.Errorf("peek: %w", ErrEmptyContainer)
	}
	return q.front.next.value, nil
}

// AverageOfPrefix returns the arithmetic mean of extractor over the first
// min(n, Len()) elements. It returns 0 for n <= 0 or an empty queue. An
// element whose extractor yields mo.None adds 0 to the sum and still counts
// toward the divisor.
func (q *Queue[T]) AverageOfPrefix(extractor Extractor[T], n int) (float64, error) {
	if extractor == nil {
		return 0, fmt.Errorf("average of prefix: nil extractor: %w", ErrInvalidArgument)
	}
	if n <= 0 || q.IsEmpty() {
		return 0, nil
	}

	var (
		sum   float64
		count int
	)
	for item := range q.prefix(n) {
		sum += extractor(item).OrElse(0)
		count++
	}

	return sum / float64(count), nil
}

// FilterPrefix returns a new queue with the elements among the first
// min(n, Len()) for which predicate holds, in their original order. Elements
// past the first n are never passed to predicate.
func (q *Queue[T]) FilterPrefix(predicate Predicate[T], n int) (*Queue[T], error) {
	if predicate == nil {
		return nil, fmt.Errorf("filter prefix: nil predicate: %w", ErrInvalidArgument)
	}

	filtered := NewQueue[T]()
	if n <= 0 {
		return filtered, nil
	}

	for item := range q.prefix(n) {
		if predicate(item) {
			filtered.Enqueue(item)
		}
	}

	return filtered, nil
}

// All returns an iterator over the elements from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.prefix(q.size)
}

// prefix yields at most n elements starting at the front.
func (q *Queue[T]) prefix(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.IsEmpty() {
			return
		}
		cursor := q.front.next
		for i := 0; i < n && cursor != nil; i++ {
			if !yield(cursor.value) {
				return
			}
			cursor = cursor.next
		}
	}
}
