package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/where"
)

// ErrNotFound is returned when no product matches a code or description.
var ErrNotFound = errors.New("product not found")

// Catalog is the immutable set of products available for ordering.
type Catalog struct {
	products []*Product
}

// New builds a catalog over products in the given order.
func New(products []*Product) *Catalog {
	return &Catalog{products: products}
}

// Path returns the configured catalog location, falling back to the config directory.
func Path() string {
	if path := viper.GetString(key.CatalogPath); path != "" {
		return path
	}
	return where.Catalog()
}

// Load parses the catalog file at path through the active filesystem backend.
func Load(path string) (*Catalog, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	products, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "products": len(products)}).Info("catalog loaded")
	return New(products), nil
}

// All returns the products in catalog order.
func (c *Catalog) All() []*Product {
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByCode returns the product with the given code.
func (c *Catalog) ByCode(code int) (*Product, error) {
	if code < 1 || code > len(c.products) {
		return nil, fmt.Errorf("code %d: %w", code, ErrNotFound)
	}
	return c.products[code-1], nil
}

// ByDescription returns the product whose description equals description, ignoring case.
func (c *Catalog) ByDescription(description string) (*Product, error) {
	product, ok := lo.Find(c.products, func(p *Product) bool {
		return p.Matches(description)
	})
	if !ok {
		return nil, fmt.Errorf("%q: %w", description, ErrNotFound)
	}
	return product, nil
}

// Resolve looks a product up by code when ref is numeric, by description otherwise.
// A failed description lookup names the closest product in the error.
func (c *Catalog) Resolve(ref string) (*Product, error) {
	ref = strings.TrimSpace(ref)
	if code, err := strconv.Atoi(ref); err == nil {
		return c.ByCode(code)
	}

	product, err := c.ByDescription(ref)
	if err == nil {
		return product, nil
	}

	if closest, ok := c.Closest(ref).Get(); ok {
		return nil, fmt.Errorf("%w, did you mean %q?", err, closest.Description)
	}
	return nil, err
}

// Search returns the products whose description fuzzily matches query, best match first.
func (c *Catalog) Search(query string) []*Product {
	descriptions := lo.Map(c.products, func(p *Product, _ int) string {
		return p.Description
	})

	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(query), descriptions)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *Product {
		return c.products[r.OriginalIndex]
	})
}

// Closest returns the product with the smallest edit distance to description.
func (c *Catalog) Closest(description string) mo.Option[*Product] {
	if len(c.products) == 0 {
		return mo.None[*Product]()
	}

	target := strings.ToLower(strings.TrimSpace(description))
	closest := lo.MinBy(c.products, func(a, b *Product) bool {
		return levenshtein.Distance(target, strings.ToLower(a.Description)) <
			levenshtein.Distance(target, strings.ToLower(b.Description))
	})

	return mo.Some(closest)
}
