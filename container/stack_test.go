package container

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func stackOf(items ...string) *Stack[string] {
	s := NewStack[string]()
	for _, item := range items {
		s.Push(item)
	}
	return s
}

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		s := NewStack[int]()

		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 0)
		So(s.top, ShouldPointTo, s.bottom)

		Convey("Pop and Peek should fail with ErrEmptyContainer", func() {
			_, err := s.Pop()
			So(err, ShouldWrap, ErrEmptyContainer)

			_, err = s.Peek()
			So(err, ShouldWrap, ErrEmptyContainer)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("When pushing k values and popping k times", func() {
			for i := 1; i <= 5; i++ {
				s.Push(i)
			}
			So(s.Len(), ShouldEqual, 5)

			peeked, err := s.Peek()
			So(err, ShouldBeNil)
			So(peeked, ShouldEqual, 5)
			So(s.Len(), ShouldEqual, 5)

			var popped []int
			for !s.IsEmpty() {
				v, err := s.Pop()
				So(err, ShouldBeNil)
				popped = append(popped, v)
			}

			Convey("Then values come out in reverse order", func() {
				So(popped, ShouldResemble, []int{5, 4, 3, 2, 1})
				So(s.top, ShouldPointTo, s.bottom)
			})
		})
	})

	Convey("The zero value stack", t, func() {
		var s Stack[string]
		So(s.IsEmpty(), ShouldBeTrue)
		So(slices.Collect(s.All()), ShouldBeEmpty)

		sub, err := s.SubStack(0)
		So(err, ShouldBeNil)
		So(sub.IsEmpty(), ShouldBeTrue)

		_, err = s.SubStack(1)
		So(err, ShouldWrap, ErrInvalidArgument)

		s.Push("a")
		v, err := s.Pop()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "a")
	})
}

func TestSubStack(t *testing.T) {
	Convey("Given a stack with a, b, c, d pushed in order", t, func() {
		s := stackOf("a", "b", "c", "d")
		before := slices.Collect(s.All())
		So(before, ShouldResemble, []string{"d", "c", "b", "a"})

		Convey("SubStack(2) should copy the top two in the same order", func() {
			sub, err := s.SubStack(2)
			So(err, ShouldBeNil)
			So(sub.Len(), ShouldEqual, 2)
			So(slices.Collect(sub.All()), ShouldResemble, []string{"d", "c"})

			top, _ := sub.Peek()
			sourceTop, _ := s.Peek()
			So(top, ShouldEqual, sourceTop)

			Convey("And the source should be unchanged", func() {
				So(s.Len(), ShouldEqual, 4)
				So(slices.Collect(s.All()), ShouldResemble, before)
			})

			Convey("And the copy should not share nodes with the source", func() {
				_, _ = sub.Pop()
				_, _ = sub.Pop()
				So(sub.IsEmpty(), ShouldBeTrue)
				So(slices.Collect(s.All()), ShouldResemble, before)
			})
		})

		Convey("SubStack(len) should copy everything", func() {
			sub, err := s.SubStack(4)
			So(err, ShouldBeNil)
			So(slices.Collect(sub.All()), ShouldResemble, before)
		})

		Convey("SubStack(0) should return an empty stack", func() {
			sub, err := s.SubStack(0)
			So(err, ShouldBeNil)
			So(sub.IsEmpty(), ShouldBeTrue)
		})

		Convey("SubStack with a negative count should fail", func() {
			sub, err := s.SubStack(-1)
			So(sub, ShouldBeNil)
			So(err, ShouldWrap, ErrInvalidArgument)
			So(slices.Collect(s.All()), ShouldResemble, before)
		})

		Convey("SubStack past the size should fail and leave the source intact", func() {
			sub, err := s.SubStack(5)
			So(sub, ShouldBeNil)
			So(err, ShouldWrap, ErrInvalidArgument)
			So(s.Len(), ShouldEqual, 4)
			So(slices.Collect(s.All()), ShouldResemble, before)
		})

		Convey("Repeated SubStack calls should give identical results", func() {
			first, _ := s.SubStack(3)
			second, _ := s.SubStack(3)
			So(slices.Collect(first.All()), ShouldResemble, slices.Collect(second.All()))
			So(slices.Collect(s.All()), ShouldResemble, before)
		})
	})
}
