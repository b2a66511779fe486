package menu

import (
	"fmt"
	"strconv"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/color"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/order"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/util"
)

const receiptIndent = 2

// ProductTable renders products as a table with their sale price.
func ProductTable(products []*catalog.Product) string {
	rows := lo.Map(products, func(p *catalog.Product, _ int) []string {
		expiry := "-"
		if date, ok := p.Expiry.Get(); ok {
			expiry = date.Format(viper.GetString(key.OrdersDateFormat))
		}

		return []string{
			fmt.Sprintf("%02d", p.Code),
			p.Description,
			p.Kind.String(),
			catalog.FormatMoney(p.Price()),
			expiry,
		}
	})

	return style.Table([]string{"Code", "Description", "Kind", "Price", "Valid until"}, rows)
}

// OrderTable summarizes orders, one per row.
func OrderTable(orders []*order.Order) string {
	rows := lo.Map(orders, func(o *order.Order, _ int) []string {
		return []string{
			fmt.Sprintf("%02d", o.ID),
			o.Date.Format(viper.GetString(key.OrdersDateFormat)),
			o.Payment.String(),
			strconv.Itoa(o.Len()),
			catalog.FormatMoney(o.Total()),
		}
	})

	return style.Table([]string{"Order", "Date", "Payment", "Products", "Total"}, rows)
}

// Receipt renders the order receipt wrapped to width and indented.
func Receipt(o *order.Order, width int) string {
	text := o.String()
	if width > receiptIndent {
		text = wordwrap.String(text, width-receiptIndent)
	}
	return indent.String(text, receiptIndent)
}

func receiptWidth() int {
	if w, _, err := util.TerminalSize(); err == nil {
		return w
	}
	return 80
}

func money(amount float64) string {
	return style.Fg(color.Price)(catalog.FormatMoney(amount))
}
