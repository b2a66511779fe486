// Package order implements customer orders, their pricing rules and the book of finalized orders.
package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/util"
)

var (
	// ErrTooManyProducts is returned when adding a product to a full order.
	ErrTooManyProducts = errors.New("order is full")

	// ErrInvalidPayment is returned for an unknown payment mode.
	ErrInvalidPayment = errors.New("invalid payment mode")
)

// Payment is the way an order is paid.
type Payment int

const (
	Cash Payment = iota + 1
	Installments
)

// ParsePayment accepts the menu number or the name of a payment mode.
func ParsePayment(s string) (Payment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "cash":
		return Cash, nil
	case "2", "installments":
		return Installments, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPayment, s)
	}
}

func (p Payment) String() string {
	switch p {
	case Cash:
		return "cash"
	case Installments:
		return "installments"
	default:
		return "payment(" + strconv.Itoa(int(p)) + ")"
	}
}

// Order is a set of catalog products bought together.
type Order struct {
	ID       int
	Date     time.Time
	Payment  Payment
	products []*catalog.Product
	capacity int
}

// New creates an empty order. Its capacity comes from orders.max_products.
func New(id int, date time.Time, payment Payment) *Order {
	return &Order{
		ID:       id,
		Date:     date,
		Payment:  payment,
		capacity: viper.GetInt(key.OrdersMaxProducts),
	}
}

// Add appends a product, failing with ErrTooManyProducts once the order is full.
func (o *Order) Add(p *catalog.Product) error {
	if len(o.products) >= o.capacity {
		return fmt.Errorf("order %02d holds %d products: %w", o.ID, o.capacity, ErrTooManyProducts)
	}
	o.products = append(o.products, p)
	return nil
}

// Products returns the products in the order they were added.
func (o *Order) Products() []*catalog.Product {
	return o.products
}

// Len returns the number of products in the order.
func (o *Order) Len() int {
	return len(o.products)
}

// Subtotal is the sum of product prices before any discount.
func (o *Order) Subtotal() float64 {
	return lo.SumBy(o.products, func(p *catalog.Product) float64 {
		return p.Price()
	})
}

// DiscountRate is the fraction taken off the subtotal; only cash payments get one.
func (o *Order) DiscountRate() float64 {
	if o.Payment == Cash {
		return viper.GetFloat64(key.OrdersCashDiscount)
	}
	return 0
}

// Total is the amount to pay, rounded to cents.
func (o *Order) Total() float64 {
	return util.RoundCents(o.Subtotal() * (1 - o.DiscountRate()))
}

// Contains reports whether any product in the order is named description, ignoring case.
func (o *Order) Contains(description string) bool {
	return lo.ContainsBy(o.products, func(p *catalog.Product) bool {
		return p.Matches(description)
	})
}

// String renders the order receipt.
func (o *Order) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order number: %02d\n", o.ID)
	fmt.Fprintf(&b, "Order date: %s\n", o.Date.Format(viper.GetString(key.OrdersDateFormat)))
	fmt.Fprintf(&b, "Order with %s.\n", util.Quantify(len(o.products), "product", "products"))
	b.WriteString("Products in order:\n")
	for _, p := range o.products {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}

	if o.Payment == Cash {
		fmt.Fprintf(&b, "Paid in cash. Discount: %.2f%%\n", o.DiscountRate()*100)
	} else {
		b.WriteString("Paid in installments.\n")
	}

	fmt.Fprintf(&b, "Order total: %s", catalog.FormatMoney(o.Total()))
	return b.String()
}
