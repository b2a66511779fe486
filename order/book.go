package order

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/samber/mo"
	"github.com/storefront-cli/storefront/container"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/util"
)

// ErrNoOpenOrder is returned when finalizing without an order in progress.
var ErrNoOpenOrder = errors.New("no open order to finalize")

// Book keeps every finalized order twice: on a stack with the most recent on
// top, and on a queue in the order they were finalized.
type Book struct {
	lastID   int
	recent   *container.Stack[*Order]
	arrivals *container.Queue[*Order]
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		recent:   container.NewStack[*Order](),
		arrivals: container.NewQueue[*Order](),
	}
}

// Open starts a new order with the next sequential ID.
func (b *Book) Open(date time.Time, payment Payment) *Order {
	b.lastID++
	return New(b.lastID, date, payment)
}

// Finalize records o as the most recent order and as the last in arrival order.
func (b *Book) Finalize(o *Order) error {
	if o == nil {
		return ErrNoOpenOrder
	}

	b.recent.Push(o)
	b.arrivals.Enqueue(o)

	log.WithFields(log.Fields{
		"order":    o.ID,
		"products": o.Len(),
		"total":    o.Total(),
	}).Info("order finalized")

	return nil
}

// Len returns the number of finalized orders.
func (b *Book) Len() int {
	return b.arrivals.Len()
}

// IsEmpty reports whether no order has been finalized yet.
func (b *Book) IsEmpty() bool {
	return b.arrivals.IsEmpty()
}

// Recent returns up to n most recent orders, newest on top. Asking for more
// orders than were finalized returns all of them.
func (b *Book) Recent(n int) (*container.Stack[*Order], error) {
	if n <= 0 {
		return nil, fmt.Errorf("recent orders: count %d: %w", n, container.ErrInvalidArgument)
	}
	return b.recent.SubStack(util.Min(n, b.recent.Len()))
}

// Arrivals iterates over finalized orders, oldest first.
func (b *Book) Arrivals() iter.Seq[*Order] {
	return b.arrivals.All()
}

// AverageTotal returns the mean total of the first n finalized orders.
func (b *Book) AverageTotal(n int) (float64, error) {
	return b.arrivals.AverageOfPrefix(totalOf, n)
}

// Above returns, among the first n finalized orders, those whose total exceeds limit.
func (b *Book) Above(n int, limit float64) (*container.Queue[*Order], error) {
	return b.arrivals.FilterPrefix(func(o *Order) bool {
		return o.Total() > limit
	}, n)
}

// WithProduct returns, among the first n finalized orders, those containing a product named description.
func (b *Book) WithProduct(n int, description string) (*container.Queue[*Order], error) {
	return b.arrivals.FilterPrefix(func(o *Order) bool {
		return o.Contains(description)
	}, n)
}

func totalOf(o *Order) mo.Option[float64] {
	if o == nil {
		return mo.None[float64]()
	}
	return mo.Some(o.Total())
}
