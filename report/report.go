// Package report answers order queries over scripted orders without the interactive menu.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/container"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/menu"
	"github.com/storefront-cli/storefront/order"
)

// Run answers the selected query over book and writes the result to options.Out.
func Run(book *order.Book, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	q, err := options.Query()
	if err != nil {
		return err
	}

	output, err := answer(book, q, options)
	if err != nil {
		log.Errorf("report %s: %v", q, err)
		return err
	}

	log.WithFields(log.Fields{
		"query":  q,
		"count":  output.Count,
		"orders": len(output.Orders),
	}).Info("report answered")

	if options.Json {
		return writeJson(options.Out, output)
	}

	return writeText(options.Out, output, book)
}

func answer(book *order.Book, q Query, options *Options) (*Output, error) {
	output := &Output{Query: q, Orders: []*Order{}}

	var orders *container.Queue[*order.Order]

	switch q {
	case Recent:
		output.Count = options.Recent.MustGet()
		recent, err := book.Recent(output.Count)
		if err != nil {
			return nil, err
		}
		output.Orders = lo.Map(slices.Collect(recent.All()), func(o *order.Order, _ int) *Order {
			return newOrder(o)
		})
		return output, nil
	case Average:
		output.Count = options.Average.MustGet()
		avg, err := book.AverageTotal(output.Count)
		if err != nil {
			return nil, err
		}
		output.Average = &avg
		return output, nil
	case Above:
		limit := options.Above.MustGet()
		output.Count, output.Limit = options.First, &limit

		var err error
		if orders, err = book.Above(options.First, limit); err != nil {
			return nil, err
		}
	case WithProduct:
		output.Count, output.Product = options.First, options.With.MustGet()

		var err error
		if orders, err = book.WithProduct(options.First, output.Product); err != nil {
			return nil, err
		}
	}

	for o := range orders.All() {
		output.Orders = append(output.Orders, newOrder(o))
	}

	return output, nil
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func writeText(out io.Writer, output *Output, book *order.Book) error {
	byID := make(map[int]*order.Order, book.Len())
	for o := range book.Arrivals() {
		byID[o.ID] = o
	}

	switch output.Query {
	case Average:
		_, err := fmt.Fprintf(out, "Average total of the first %d orders: %s\n", output.Count, catalog.FormatMoney(*output.Average))
		return err
	case Recent:
		for _, o := range output.Orders {
			fmt.Fprintf(out, "Order %02d of %s\n", o.ID, o.Date)
			for _, p := range byID[o.ID].Products() {
				fmt.Fprintln(out, p.String())
			}
			fmt.Fprintln(out)
		}
		return nil
	}

	if len(output.Orders) == 0 {
		_, err := fmt.Fprintln(out, "No orders found.")
		return err
	}

	for _, o := range output.Orders {
		if _, err := fmt.Fprintf(out, "%s\n\n", menu.Receipt(byID[o.ID], 80)); err != nil {
			return err
		}
	}

	return nil
}
