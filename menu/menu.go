// Package menu implements the interactive store console: browsing the catalog, building orders and querying finalized ones.
package menu

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/container"
	"github.com/storefront-cli/storefront/icon"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/order"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/util"
)

// Options configures a menu session. Zero fields fall back to the terminal.
type Options struct {
	Prompter Prompter
	Out      io.Writer
	Now      func() time.Time
}

type menu struct {
	prompt Prompter
	out    io.Writer
	now    func() time.Time

	catalog *catalog.Catalog
	book    *order.Book

	state         state
	statesHistory *container.Stack[state]

	open    *order.Order
	pending int
}

func newMenu(c *catalog.Catalog, options *Options) *menu {
	m := &menu{
		prompt:        options.Prompter,
		out:           options.Out,
		now:           options.Now,
		catalog:       c,
		book:          order.NewBook(),
		state:         mainState,
		statesHistory: container.NewStack[state](),
	}

	if m.prompt == nil {
		m.prompt = Survey{}
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if m.now == nil {
		m.now = time.Now
	}

	return m
}

func (m *menu) previousState() {
	if s, err := m.statesHistory.Pop(); err == nil {
		m.state = s
	} else {
		m.state = mainState
	}
}

func (m *menu) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.state = s
}

// home drops the navigation history and returns to the main menu.
func (m *menu) home() {
	m.statesHistory = container.NewStack[state]()
	m.state = mainState
}

// Run shows the menu over c until the user quits or interrupts.
func Run(c *catalog.Catalog, options *Options) error {
	m := newMenu(c, options)

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if interrupted(err) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *menu) handleState() error {
	switch m.state {
	case mainState:
		return m.handleMainState()
	case listState:
		return m.handleListState()
	case codeState:
		return m.handleCodeState()
	case descriptionState:
		return m.handleDescriptionState()
	case paymentState:
		return m.handlePaymentState()
	case quantityState:
		return m.handleQuantityState()
	case addProductState:
		return m.handleAddProductState()
	case finalizeState:
		return m.handleFinalizeState()
	case recentState:
		return m.handleRecentState()
	case averageState:
		return m.handleAverageState()
	case aboveState:
		return m.handleAboveState()
	case withProductState:
		return m.handleWithProductState()
	}

	return fmt.Errorf("unknown menu state %d", m.state)
}

func (m *menu) title(s string) {
	fmt.Fprintln(m.out, style.Title(s))
}

func (m *menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *menu) success(format string, a ...any) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Success), fmt.Sprintf(format, a...))
}

func (m *menu) fail(format string, a ...any) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), fmt.Sprintf(format, a...))
}

func (m *menu) clear() {
	if viper.GetBool(key.MenuClearScreen) && m.out == os.Stdout {
		util.ClearScreen()
	}
}

// openOrderLine describes the order being built, if any.
func (m *menu) openOrderLine() string {
	if m.open == nil {
		return ""
	}
	return fmt.Sprintf("%s Open order %02d: %s, %s",
		icon.Get(icon.Cart),
		m.open.ID,
		util.Quantify(m.open.Len(), "product", "products"),
		catalog.FormatMoney(m.open.Total()),
	)
}

func mainOptions() []string {
	return lo.Map(mainEntries, func(e entry, _ int) string {
		return e.label
	})
}
