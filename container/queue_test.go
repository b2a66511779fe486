package container

import (
	"slices"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func queueOf[T any](items ...T) *Queue[T] {
	q := NewQueue[T]()
	for _, item := range items {
		q.Enqueue(item)
	}
	return q
}

func identity(v float64) float64 { return v }

func TestQueue(t *testing.T) {
	Convey("Given an empty queue", t, func() {
		q := NewQueue[int]()

		So(q.IsEmpty(), ShouldBeTrue)
		So(q.tail, ShouldPointTo, q.front)

		Convey("Dequeue and Peek should fail with ErrEmptyContainer", func() {
			_, err := q.Dequeue()
			So(err, ShouldWrap, ErrEmptyContainer)

			_, err = q.Peek()
			So(err, ShouldWrap, ErrEmptyContainer)
		})

		Convey("When enqueueing k values and dequeueing k times", func() {
			for i := 1; i <= 5; i++ {
				q.Enqueue(i)
			}
			So(q.Len(), ShouldEqual, 5)

			front, err := q.Peek()
			So(err, ShouldBeNil)
			So(front, ShouldEqual, 1)

			var dequeued []int
			for !q.IsEmpty() {
				v, err := q.Dequeue()
				So(err, ShouldBeNil)
				dequeued = append(dequeued, v)
			}

			Convey("Then values come out in insertion order", func() {
				So(dequeued, ShouldResemble, []int{1, 2, 3, 4, 5})
			})

			Convey("Then the tail is reset to the sentinel", func() {
				So(q.tail, ShouldPointTo, q.front)
				So(q.front.next, ShouldBeNil)

				q.Enqueue(9)
				v, err := q.Dequeue()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 9)
			})
		})
	})

	Convey("The zero value queue", t, func() {
		var q Queue[string]
		So(q.IsEmpty(), ShouldBeTrue)
		So(slices.Collect(q.All()), ShouldBeEmpty)

		avg, err := q.AverageOfPrefix(func(string) mo.Option[float64] { return mo.Some(1.0) }, 3)
		So(err, ShouldBeNil)
		So(avg, ShouldEqual, 0.0)

		filtered, err := q.FilterPrefix(func(string) bool { return true }, 3)
		So(err, ShouldBeNil)
		So(filtered.IsEmpty(), ShouldBeTrue)

		q.Enqueue("a")
		q.Enqueue("b")
		So(slices.Collect(q.All()), ShouldResemble, []string{"a", "b"})
	})
}

func TestAverageOfPrefix(t *testing.T) {
	Convey("Given a queue with 10, 20, 30", t, func() {
		q := queueOf(10.0, 20.0, 30.0)
		extractor := Extract(identity)

		Convey("The average of the first two should be 15", func() {
			avg, err := q.AverageOfPrefix(extractor, 2)
			So(err, ShouldBeNil)
			So(avg, ShouldAlmostEqual, 15.0)
		})

		Convey("A count past the size should be clamped", func() {
			avg, err := q.AverageOfPrefix(extractor, 5)
			So(err, ShouldBeNil)
			So(avg, ShouldAlmostEqual, 20.0)
		})

		Convey("A non-positive count should return 0 without calling the extractor", func() {
			calls := 0
			counting := func(v float64) mo.Option[float64] {
				calls++
				return mo.Some(v)
			}

			avg, err := q.AverageOfPrefix(counting, 0)
			So(err, ShouldBeNil)
			So(avg, ShouldEqual, 0.0)

			avg, err = q.AverageOfPrefix(counting, -3)
			So(err, ShouldBeNil)
			So(avg, ShouldEqual, 0.0)
			So(calls, ShouldEqual, 0)
		})

		Convey("A nil extractor should fail with ErrInvalidArgument", func() {
			_, err := q.AverageOfPrefix(nil, 2)
			So(err, ShouldWrap, ErrInvalidArgument)
		})

		Convey("A missing value should count as zero and still count toward the divisor", func() {
			skipTwenty := func(v float64) mo.Option[float64] {
				if v == 20 {
					return mo.None[float64]()
				}
				return mo.Some(v)
			}
			avg, err := q.AverageOfPrefix(skipTwenty, 3)
			So(err, ShouldBeNil)
			So(avg, ShouldAlmostEqual, 40.0/3.0)
		})

		Convey("Repeated calls should not change the result or the source", func() {
			first, _ := q.AverageOfPrefix(extractor, 3)
			second, _ := q.AverageOfPrefix(extractor, 3)
			So(first, ShouldEqual, second)
			So(slices.Collect(q.All()), ShouldResemble, []float64{10, 20, 30})
		})
	})

	Convey("An empty queue should average to 0", t, func() {
		q := NewQueue[float64]()
		avg, err := q.AverageOfPrefix(Extract(identity), 4)
		So(err, ShouldBeNil)
		So(avg, ShouldEqual, 0.0)
	})
}

func TestFilterPrefix(t *testing.T) {
	Convey("Given a queue with A, B, C, D", t, func() {
		q := queueOf("A", "B", "C", "D")
		seen := map[string]int{}
		inAC := func(s string) bool {
			seen[s]++
			return s == "A" || s == "C"
		}

		Convey("Filtering the first three keeps A and C and never looks at D", func() {
			filtered, err := q.FilterPrefix(inAC, 3)
			So(err, ShouldBeNil)
			So(slices.Collect(filtered.All()), ShouldResemble, []string{"A", "C"})
			So(seen["D"], ShouldEqual, 0)
			So(seen["A"]+seen["B"]+seen["C"], ShouldEqual, 3)
		})

		Convey("The result is independent from the source", func() {
			filtered, _ := q.FilterPrefix(inAC, 4)
			_, _ = filtered.Dequeue()
			So(slices.Collect(q.All()), ShouldResemble, []string{"A", "B", "C", "D"})
		})

		Convey("A non-positive count returns an empty queue without calling the predicate", func() {
			filtered, err := q.FilterPrefix(inAC, 0)
			So(err, ShouldBeNil)
			So(filtered.IsEmpty(), ShouldBeTrue)
			So(seen, ShouldBeEmpty)
		})

		Convey("A nil predicate should fail with ErrInvalidArgument", func() {
			filtered, err := q.FilterPrefix(nil, 2)
			So(filtered, ShouldBeNil)
			So(err, ShouldWrap, ErrInvalidArgument)
		})

		Convey("Repeated calls should give identical results and leave the source unchanged", func() {
			first, _ := q.FilterPrefix(inAC, 4)
			second, _ := q.FilterPrefix(inAC, 4)
			So(slices.Collect(first.All()), ShouldResemble, slices.Collect(second.All()))
			So(slices.Collect(q.All()), ShouldResemble, []string{"A", "B", "C", "D"})
			So(q.Len(), ShouldEqual, 4)
		})
	})
}
