package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/storefront-cli/storefront/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "order", "orders"), ShouldEqual, "1 order")
		So(Quantify(2, "order", "orders"), ShouldEqual, "2 orders")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestParseDecimal(t *testing.T) {
	Convey("ParseDecimal", t, func() {
		v, err := ParseDecimal("12,50")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 12.5)

		v, err = ParseDecimal(" 3.25 ")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 3.25)

		_, err = ParseDecimal("abc")
		So(err, ShouldNotBeNil)
	})
}

func TestRoundCents(t *testing.T) {
	Convey("RoundCents", t, func() {
		So(RoundCents(10.754), ShouldEqual, 10.75)
		So(RoundCents(10.755), ShouldEqual, 10.76)
		So(RoundCents(2.675), ShouldEqual, 2.68)
		So(RoundCents(9.1375), ShouldEqual, 9.14)
		So(RoundCents(0), ShouldEqual, 0)

		Convey("should round the shortest form of inexact products", func() {
			So(RoundCents(1.70*0.85), ShouldEqual, 1.44)
			So(RoundCents(2.30*0.85), ShouldEqual, 1.95)
			So(RoundCents(4.10*0.85), ShouldEqual, 3.48)
			So(RoundCents(7.10*0.85), ShouldEqual, 6.03)
			So(RoundCents(-2.675), ShouldEqual, -2.68)
		})
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/tmp/a/b.txt", []byte("x"), 0644), ShouldBeNil)

		So(Delete("/tmp/a"), ShouldBeNil)
		exists, _ := filesystem.API().Exists("/tmp/a/b.txt")
		So(exists, ShouldBeFalse)

		So(Delete("/missing"), ShouldNotBeNil)
	})
}
