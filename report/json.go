package report

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/order"
)

type Product struct {
	Code        int     `json:"code" jsonschema:"description=Position of the product in the catalog, starting at 1."`
	Description string  `json:"description"`
	Price       float64 `json:"price" jsonschema:"description=Sale price: cost plus margin, rounded to cents."`
	Expiry      string  `json:"expiry,omitempty" jsonschema:"description=Expiry date of perishable products."`
}

type Order struct {
	ID       int        `json:"id"`
	Date     string     `json:"date"`
	Payment  string     `json:"payment" jsonschema:"enum=cash,enum=installments"`
	Total    float64    `json:"total" jsonschema:"description=Total after the cash discount, rounded to cents."`
	Products []*Product `json:"products"`
}

type Output struct {
	Query   Query    `json:"query" jsonschema:"enum=recent,enum=average,enum=above,enum=with"`
	Count   int      `json:"count" jsonschema:"description=How many orders the query considered."`
	Limit   *float64 `json:"limit,omitempty" jsonschema:"description=Minimum total for the above query."`
	Product string   `json:"product,omitempty" jsonschema:"description=Product searched by the with query."`
	Average *float64 `json:"average,omitempty" jsonschema:"description=Mean total for the average query."`
	Orders  []*Order `json:"orders"`
}

func newOrder(o *order.Order) *Order {
	layout := viper.GetString(key.OrdersDateFormat)

	return &Order{
		ID:      o.ID,
		Date:    o.Date.Format(layout),
		Payment: o.Payment.String(),
		Total:   o.Total(),
		Products: lo.Map(o.Products(), func(p *catalog.Product, _ int) *Product {
			product := &Product{
				Code:        p.Code,
				Description: p.Description,
				Price:       p.Price(),
			}
			if expiry, ok := p.Expiry.Get(); ok {
				product.Expiry = expiry.Format(layout)
			}
			return product
		}),
	}
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}
