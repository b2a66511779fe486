package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	// ErrNoQuery is returned when no report query was selected.
	ErrNoQuery = errors.New("no report query selected")

	// ErrConflictingQueries is returned when more than one query was selected.
	ErrConflictingQueries = errors.New("only one report query can be selected")
)

// Query names a report over a book of orders.
type Query string

const (
	Recent      Query = "recent"
	Average     Query = "average"
	Above       Query = "above"
	WithProduct Query = "with"
)

// Options selects exactly one query. First bounds Above and WithProduct to
// the first orders finalized.
type Options struct {
	Out     io.Writer
	Json    bool
	Recent  mo.Option[int]
	Average mo.Option[int]
	Above   mo.Option[float64]
	With    mo.Option[string]
	First   int
}

// Query returns the selected query.
func (o *Options) Query() (Query, error) {
	selected := lo.Compact([]Query{
		lo.Ternary(o.Recent.IsPresent(), Recent, ""),
		lo.Ternary(o.Average.IsPresent(), Average, ""),
		lo.Ternary(o.Above.IsPresent(), Above, ""),
		lo.Ternary(o.With.IsPresent(), WithProduct, ""),
	})

	switch len(selected) {
	case 0:
		return "", ErrNoQuery
	case 1:
		return selected[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrConflictingQueries, selected)
	}
}
