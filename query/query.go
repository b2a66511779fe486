// Package query remembers the product lookups typed into the menu and suggests them back, most popular first.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/where"
	"golang.org/x/exp/slices"
)

type lookup struct {
	Hits  int    `json:"hits"`
	Query string `json:"query"`
}

type history = map[string]*lookup

var cacher = gache.New[history](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// memo holds ranked matches per sanitized prefix until the history changes.
var memo = make(map[string][]*lookup)

func load() history {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(history)
	}
	return cached
}

// Remember records a lookup, adding weight to its popularity.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	h := load()
	l, ok := h[q]
	if !ok {
		l = &lookup{Query: q}
		h[q] = l
	}
	l.Hits += weight
	log.Debugf("lookup %q has %d hits", q, l.Hits)

	clear(memo)
	return cacher.Set(h)
}

// Suggest returns the most popular remembered lookup matching q.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns remembered lookups fuzzily matching q, most popular first.
// It returns nothing when search.show_query_suggestions is off.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	matches, ok := memo[q]
	if !ok {
		for _, l := range load() {
			if fuzzy.Match(q, l.Query) {
				matches = append(matches, l)
			}
		}

		slices.SortFunc(matches, func(a, b *lookup) int {
			if a.Hits != b.Hits {
				return b.Hits - a.Hits
			}
			return strings.Compare(a.Query, b.Query)
		})

		memo[q] = matches
	}

	return lo.Map(matches, func(l *lookup, _ int) string {
		return l.Query
	})
}

// Forget drops the whole lookup history.
func Forget() error {
	clear(memo)
	return cacher.Set(make(history))
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
