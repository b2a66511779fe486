package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/order"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for scripts that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown script format")

// Script lists the orders to finalize, in order.
type Script struct {
	Orders []*ScriptOrder `json:"orders" yaml:"orders"`
}

// ScriptOrder is one order of a script. Products are codes or descriptions.
type ScriptOrder struct {
	Payment  string   `json:"payment" yaml:"payment"`
	Date     string   `json:"date,omitempty" yaml:"date,omitempty"`
	Products []string `json:"products" yaml:"products"`
}

// ReadScript loads a script, picking the decoder from the file extension.
func ReadScript(path string) (*Script, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeScript(f, strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeScript decodes a script in the given format: json, yaml or yml.
func DecodeScript(r io.Reader, format string) (*Script, error) {
	var script Script

	switch strings.ToLower(format) {
	case "json":
		if err := json.NewDecoder(r).Decode(&script); err != nil {
			return nil, fmt.Errorf("decode json script: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&script); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml script: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &script, nil
}

// Book finalizes every scripted order into a new book. Orders without a date get now.
func (s *Script) Book(c *catalog.Catalog, now time.Time) (*order.Book, error) {
	book := order.NewBook()
	layout := viper.GetString(key.OrdersDateFormat)

	for i, so := range s.Orders {
		payment, err := order.ParsePayment(so.Payment)
		if err != nil {
			return nil, fmt.Errorf("order #%d: %w", i+1, err)
		}

		date := now
		if so.Date != "" {
			date, err = time.Parse(layout, so.Date)
			if err != nil {
				return nil, fmt.Errorf("order #%d: date %q: %w", i+1, so.Date, err)
			}
		}

		o := book.Open(date, payment)
		for _, ref := range so.Products {
			p, err := c.Resolve(ref)
			if err != nil {
				return nil, fmt.Errorf("order #%d: %w", i+1, err)
			}

			if err := o.Add(p); err != nil {
				return nil, fmt.Errorf("order #%d: %w", i+1, err)
			}
		}

		if err := book.Finalize(o); err != nil {
			return nil, err
		}
	}

	return book, nil
}
