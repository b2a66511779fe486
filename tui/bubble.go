package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/util"
)

type bubble struct {
	catalog *catalog.Catalog
	keymap  *keymap

	inputC textinput.Model
	tableC table.Model
	helpC  help.Model

	shown    []*catalog.Product
	selected mo.Option[*catalog.Product]

	width, height int
}

func newBubble(c *catalog.Catalog) *bubble {
	input := textinput.New()
	input.Prompt = "Filter: "
	input.Placeholder = "type a product description"
	input.Focus()

	b := &bubble{
		catalog: c,
		keymap:  newKeymap(),
		inputC:  input,
		tableC: table.New(
			table.WithColumns([]table.Column{
				{Title: "Code", Width: 6},
				{Title: "Description", Width: 32},
				{Title: "Price", Width: 12},
			}),
			table.WithFocused(true),
			table.WithHeight(10),
		),
		helpC:    help.New(),
		selected: mo.None[*catalog.Product](),
	}

	b.filter("")
	return b
}

// filter shows the products fuzzily matching q, or all of them when q is empty.
func (b *bubble) filter(q string) {
	if q == "" {
		b.shown = b.catalog.All()
	} else {
		b.shown = b.catalog.Search(q)
	}

	b.tableC.SetRows(lo.Map(b.shown, func(p *catalog.Product, _ int) table.Row {
		return table.Row{fmt.Sprintf("%02d", p.Code), p.Description, catalog.FormatMoney(p.Price())}
	}))
	b.tableC.GotoTop()
}

func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.tableC.SetHeight(util.Max(msg.Height-6, 3))
		b.helpC.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.selectOne):
			if len(b.shown) > 0 {
				b.selected = mo.Some(b.shown[b.tableC.Cursor()])
			}
			return b, tea.Quit
		case key.Matches(msg, b.keymap.up, b.keymap.down):
			var cmd tea.Cmd
			b.tableC, cmd = b.tableC.Update(tea.KeyMsg{Type: arrow(msg, b.keymap)})
			return b, cmd
		}
	}

	previous := b.inputC.Value()

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != previous {
		b.filter(b.inputC.Value())
	}

	return b, cmd
}

// arrow maps the emacs-style bindings onto the arrow keys the table understands.
func arrow(msg tea.KeyMsg, k *keymap) tea.KeyType {
	if key.Matches(msg, k.up) {
		return tea.KeyUp
	}
	return tea.KeyDown
}

func (b *bubble) View() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s",
		style.Title("Catalog"),
		b.inputC.View(),
		b.tableC.View(),
		b.helpC.ShortHelpView(b.keymap.help()),
	)
}
