package order

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/config"
	"github.com/storefront-cli/storefront/container"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/key"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

var (
	napkins = &catalog.Product{Code: 1, Kind: catalog.NonPerishable, Description: "Guardanapos", Cost: 2.50, Margin: 0.10}
	yogurt  = &catalog.Product{
		Code: 2, Kind: catalog.Perishable, Description: "Iogurte", Cost: 5.00, Margin: 0.60,
		Expiry: mo.Some(time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC)),
	}
	detergent = &catalog.Product{Code: 3, Kind: catalog.NonPerishable, Description: "Detergente", Cost: 3.00, Margin: 0.50}
	cheese    = &catalog.Product{Code: 4, Kind: catalog.Perishable, Description: "Queijo Minas", Cost: 20.00, Margin: 0.25}
)

var day = time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)

func TestPayment(t *testing.T) {
	Convey("ParsePayment should accept numbers and names", t, func() {
		p, err := ParsePayment("1")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, Cash)

		p, err = ParsePayment(" Installments ")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, Installments)

		_, err = ParsePayment("3")
		So(err, ShouldWrap, ErrInvalidPayment)
	})

	Convey("Payment should print its name", t, func() {
		So(Cash.String(), ShouldEqual, "cash")
		So(Installments.String(), ShouldEqual, "installments")
		So(Payment(7).String(), ShouldEqual, "payment(7)")
	})
}

func TestOrder(t *testing.T) {
	Convey("Given an order paid in cash", t, func() {
		o := New(1, day, Cash)
		So(o.Add(yogurt), ShouldBeNil)
		So(o.Add(napkins), ShouldBeNil)

		Convey("Subtotal should sum product prices", func() {
			So(o.Subtotal(), ShouldAlmostEqual, 10.75)
		})

		Convey("Total should apply the cash discount and round half up", func() {
			So(o.DiscountRate(), ShouldEqual, 0.15)
			So(o.Total(), ShouldEqual, 9.14)
		})

		Convey("Contains should match descriptions ignoring case", func() {
			So(o.Contains("IOGURTE"), ShouldBeTrue)
			So(o.Contains("Detergente"), ShouldBeFalse)
		})

		Convey("String should render the receipt", func() {
			receipt := o.String()
			So(receipt, ShouldStartWith, "Order number: 01\nOrder date: 25/08/2025\n")
			So(receipt, ShouldContainSubstring, "Order with 2 products.")
			So(receipt, ShouldContainSubstring, "NAME: Iogurte: R$ 8.00\nValid until: 29/08/2025")
			So(receipt, ShouldContainSubstring, "Paid in cash. Discount: 15.00%")
			So(receipt, ShouldEndWith, "Order total: R$ 9.14")
		})
	})

	Convey("An order paid in installments should not be discounted", t, func() {
		o := New(2, day, Installments)
		So(o.Add(cheese), ShouldBeNil)
		So(o.Total(), ShouldEqual, 25.00)
		So(o.String(), ShouldContainSubstring, "Paid in installments.")
		So(o.String(), ShouldContainSubstring, "Order with 1 product.")
	})

	Convey("An order should refuse products beyond its capacity", t, func() {
		viper.Set(key.OrdersMaxProducts, 2)
		defer viper.Set(key.OrdersMaxProducts, 10)

		o := New(3, day, Cash)
		So(o.Add(napkins), ShouldBeNil)
		So(o.Add(napkins), ShouldBeNil)
		So(o.Add(detergent), ShouldWrap, ErrTooManyProducts)
		So(o.Len(), ShouldEqual, 2)
	})

	Convey("A cash total should round the discounted subtotal as a decimal", t, func() {
		for _, tc := range []struct{ cost, total float64 }{
			{1.70, 1.44},
			{4.10, 3.48},
			{7.10, 6.03},
		} {
			o := New(5, day, Cash)
			So(o.Add(&catalog.Product{Code: 9, Kind: catalog.NonPerishable, Description: "Avulso", Cost: tc.cost}), ShouldBeNil)
			So(o.Total(), ShouldEqual, tc.total)
		}
	})

	Convey("An empty order should total zero", t, func() {
		o := New(4, day, Installments)
		So(o.Total(), ShouldEqual, 0)
		So(o.Products(), ShouldBeEmpty)
	})
}

func newBook() *Book {
	b := NewBook()

	first := b.Open(day, Cash)
	lo.Must0(first.Add(yogurt))
	lo.Must0(first.Add(napkins))
	lo.Must0(b.Finalize(first))

	second := b.Open(day.AddDate(0, 0, 1), Installments)
	lo.Must0(second.Add(cheese))
	lo.Must0(b.Finalize(second))

	third := b.Open(day.AddDate(0, 0, 2), Installments)
	lo.Must0(third.Add(detergent))
	lo.Must0(b.Finalize(third))

	return b
}

func ids(q *container.Queue[*Order]) []int {
	var out []int
	for o := range q.All() {
		out = append(out, o.ID)
	}
	return out
}

func TestBook(t *testing.T) {
	Convey("Given a book with three finalized orders", t, func() {
		b := newBook()
		So(b.Len(), ShouldEqual, 3)
		So(b.IsEmpty(), ShouldBeFalse)

		Convey("Open should hand out sequential IDs", func() {
			So(b.Open(day, Cash).ID, ShouldEqual, 4)
		})

		Convey("Arrivals should list orders oldest first", func() {
			var got []int
			for o := range b.Arrivals() {
				got = append(got, o.ID)
			}
			So(got, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Recent should return the newest orders on top", func() {
			recent, err := b.Recent(2)
			So(err, ShouldBeNil)
			So(recent.Len(), ShouldEqual, 2)

			top, err := recent.Pop()
			So(err, ShouldBeNil)
			So(top.ID, ShouldEqual, 3)
			next, err := recent.Pop()
			So(err, ShouldBeNil)
			So(next.ID, ShouldEqual, 2)

			Convey("and leave the book untouched", func() {
				So(b.Len(), ShouldEqual, 3)
			})
		})

		Convey("Recent should clamp to the number of orders", func() {
			recent, err := b.Recent(10)
			So(err, ShouldBeNil)
			So(recent.Len(), ShouldEqual, 3)
		})

		Convey("Recent should reject a non-positive count", func() {
			_, err := b.Recent(0)
			So(err, ShouldWrap, container.ErrInvalidArgument)
		})

		Convey("AverageTotal should average the first orders", func() {
			avg, err := b.AverageTotal(2)
			So(err, ShouldBeNil)
			So(avg, ShouldAlmostEqual, 17.07)

			avg, err = b.AverageTotal(99)
			So(err, ShouldBeNil)
			So(avg, ShouldAlmostEqual, 12.88)

			avg, err = b.AverageTotal(0)
			So(err, ShouldBeNil)
			So(avg, ShouldEqual, 0)
		})

		Convey("Above should keep orders whose total exceeds the limit", func() {
			above, err := b.Above(3, 5)
			So(err, ShouldBeNil)
			So(ids(above), ShouldResemble, []int{1, 2})

			above, err = b.Above(1, 5)
			So(err, ShouldBeNil)
			So(ids(above), ShouldResemble, []int{1})
		})

		Convey("WithProduct should keep orders containing the product", func() {
			with, err := b.WithProduct(3, "queijo minas")
			So(err, ShouldBeNil)
			So(ids(with), ShouldResemble, []int{2})

			with, err = b.WithProduct(1, "Queijo Minas")
			So(err, ShouldBeNil)
			So(with.IsEmpty(), ShouldBeTrue)
		})
	})

	Convey("Finalize should reject a missing order", t, func() {
		So(NewBook().Finalize(nil), ShouldEqual, ErrNoOpenOrder)
	})

	Convey("An empty book should average to zero", t, func() {
		avg, err := NewBook().AverageTotal(5)
		So(err, ShouldBeNil)
		So(avg, ShouldEqual, 0)
	})

	Convey("totalOf should skip missing orders", t, func() {
		So(totalOf(nil).IsAbsent(), ShouldBeTrue)
	})
}
