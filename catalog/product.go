// Package catalog models the products on sale and loads them from a catalog file.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/constant"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/util"
)

// Kind distinguishes products that expire from those that do not.
type Kind int

const (
	NonPerishable Kind = constant.KindNonPerishable
	Perishable    Kind = constant.KindPerishable
)

func (k Kind) String() string {
	switch k {
	case NonPerishable:
		return "non-perishable"
	case Perishable:
		return "perishable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Product is a catalog entry. Code is its 1-based position in the catalog file.
type Product struct {
	Code        int                  `json:"code"`
	Kind        Kind                 `json:"kind"`
	Description string               `json:"description"`
	Cost        float64              `json:"cost"`
	Margin      float64              `json:"margin"`
	Expiry      mo.Option[time.Time] `json:"-"`
}

// Price is the sale value: cost plus the profit margin, rounded to cents.
func (p *Product) Price() float64 {
	return util.RoundCents(p.Cost * (1 + p.Margin))
}

// Matches reports whether description names this product, ignoring case and surrounding spaces.
func (p *Product) Matches(description string) bool {
	return strings.EqualFold(strings.TrimSpace(description), p.Description)
}

func (p *Product) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NAME: %s: %s", p.Description, FormatMoney(p.Price()))

	if expiry, ok := p.Expiry.Get(); ok {
		fmt.Fprintf(&b, "\nValid until: %s", expiry.Format(viper.GetString(key.OrdersDateFormat)))
	}

	return b.String()
}

// FormatMoney renders an amount with the configured currency symbol and two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%s %.2f", viper.GetString(key.OrdersCurrency), amount)
}
