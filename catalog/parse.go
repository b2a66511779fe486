package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/storefront-cli/storefront/util"
)

// ExpiryLayout is the date layout of the expiry column in catalog files.
const ExpiryLayout = "02/01/2006"

// ErrMalformed is returned when a catalog file does not follow the expected layout.
var ErrMalformed = errors.New("malformed catalog")

// Parse reads a catalog: a first line with the product count followed by one
// kind;description;cost;margin[;expiry] line per product.
func Parse(r io.Reader) ([]*Product, error) {
	scanner := bufio.NewScanner(r)

	header, ok := nextLine(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: missing product count", ErrMalformed)
	}

	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid product count %q", ErrMalformed, header)
	}

	products := make([]*Product, 0, count)
	for i := 1; i <= count; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d products, found %d", ErrMalformed, count, i-1)
		}

		product, err := parseProduct(line)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		product.Code = i
		products = append(products, product)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// nextLine returns the next non-blank line, trimmed.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}

func parseProduct(line string) (*Product, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q has %d fields, want at least 4", ErrMalformed, line, len(fields))
	}

	kind, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid kind %q", ErrMalformed, fields[0])
	}

	description := strings.TrimSpace(fields[1])
	if description == "" {
		return nil, fmt.Errorf("%w: empty description", ErrMalformed)
	}

	cost, err := util.ParseDecimal(fields[2])
	if err != nil || cost < 0 {
		return nil, fmt.Errorf("%w: invalid cost %q", ErrMalformed, fields[2])
	}

	margin, err := util.ParseDecimal(fields[3])
	if err != nil || margin < 0 {
		return nil, fmt.Errorf("%w: invalid margin %q", ErrMalformed, fields[3])
	}

	product := &Product{
		Kind:        Kind(kind),
		Description: description,
		Cost:        cost,
		Margin:      margin,
		Expiry:      mo.None[time.Time](),
	}

	switch product.Kind {
	case NonPerishable:
	case Perishable:
		if len(fields) < 5 {
			return nil, fmt.Errorf("%w: perishable %q has no expiry date", ErrMalformed, description)
		}
		expiry, err := time.Parse(ExpiryLayout, strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiry %q", ErrMalformed, fields[4])
		}
		product.Expiry = mo.Some(expiry)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformed, kind)
	}

	return product, nil
}
