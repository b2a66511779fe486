// Package tui implements a full-screen catalog browser with live fuzzy filtering.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/storefront-cli/storefront/catalog"
)

// Run browses c until the user picks a product or quits.
func Run(c *catalog.Catalog) (mo.Option[*catalog.Product], error) {
	final, err := tea.NewProgram(newBubble(c), tea.WithAltScreen()).Run()
	if err != nil {
		return mo.None[*catalog.Product](), err
	}

	b, ok := final.(*bubble)
	if !ok {
		return mo.None[*catalog.Product](), fmt.Errorf("unexpected model %T", final)
	}

	return b.selected, nil
}
