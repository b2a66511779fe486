package menu

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/color"
	"github.com/storefront-cli/storefront/constant"
	"github.com/storefront-cli/storefront/icon"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/order"
	"github.com/storefront-cli/storefront/query"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/util"
)

type state int

const (
	mainState state = iota + 1
	listState
	codeState
	descriptionState
	paymentState
	quantityState
	addProductState
	finalizeState
	recentState
	averageState
	aboveState
	withProductState
	quitState
)

type entry struct {
	label string
	next  state
}

var mainEntries = []entry{
	{"1 - List all products", listState},
	{"2 - Find a product by code", codeState},
	{"3 - Find a product by description", descriptionState},
	{"4 - Start a new order", paymentState},
	{"5 - Finalize the order", finalizeState},
	{"6 - Products of the most recent orders", recentState},
	{"7 - Average total of the first orders", averageState},
	{"8 - First orders above a value", aboveState},
	{"9 - First orders containing a product", withProductState},
	{"0 - Quit", quitState},
}

const back = "Back"

func (m *menu) handleMainState() error {
	m.clear()
	m.title(strings.ToUpper(constant.Storefront))
	if line := m.openOrderLine(); line != "" {
		m.println(line)
	}

	i, err := m.prompt.Choose("What do you want to do?", mainOptions())
	if err != nil {
		return err
	}

	m.newState(mainEntries[i].next)
	return nil
}

func (m *menu) handleListState() error {
	m.println(ProductTable(m.catalog.All()))
	m.previousState()
	return nil
}

func (m *menu) handleCodeState() error {
	in, err := m.prompt.Ask("Product code:", nil)
	if err != nil {
		return err
	}

	code, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		m.fail("Invalid code.")
		m.previousState()
		return nil
	}

	m.showProduct(m.catalog.ByCode(code))
	m.previousState()
	return nil
}

func (m *menu) handleDescriptionState() error {
	in, err := m.prompt.Ask("Product description:", m.suggestProducts)
	if err != nil {
		return err
	}

	p, err := m.catalog.ByDescription(in)
	if errors.Is(err, catalog.ErrNotFound) {
		if closest, ok := m.catalog.Closest(in).Get(); ok {
			err = fmt.Errorf("%w, did you mean %q?", err, closest.Description)
		}
	}

	m.showProduct(p, err)
	m.previousState()
	return nil
}

func (m *menu) showProduct(p *catalog.Product, err error) {
	if err != nil {
		m.fail("Product not found: %s", err)
		return
	}

	if rememberErr := query.Remember(p.Description, 1); rememberErr != nil {
		log.Warnf("remember lookup: %v", rememberErr)
	}
	m.println(icon.Get(icon.Product), p.String())
}

func (m *menu) handlePaymentState() error {
	options := []string{
		"Cash " + style.Fg(color.Discount)(fmt.Sprintf("(%.0f%% discount)", viper.GetFloat64(key.OrdersCashDiscount)*100)),
		"Installments",
		back,
	}

	i, err := m.prompt.Choose("Payment mode:", options)
	if err != nil {
		return err
	}

	if options[i] == back {
		m.previousState()
		return nil
	}

	if m.open != nil {
		m.println(icon.Get(icon.Warn), fmt.Sprintf("Order %02d was discarded.", m.open.ID))
	}

	m.open = m.book.Open(m.now(), order.Payment(i+1))
	m.println(ProductTable(m.catalog.All()))
	m.newState(quantityState)
	return nil
}

func (m *menu) handleQuantityState() error {
	n, err := m.askQuantity("How many products will the order have?")
	if err != nil {
		return err
	}

	count, ok := n.Get()
	if !ok {
		return nil
	}

	if limit := viper.GetInt(key.OrdersMaxProducts); count > limit {
		m.fail("An order holds at most %s.", util.Quantify(limit, "product", "products"))
		return nil
	}

	m.pending = count
	m.newState(addProductState)
	return nil
}

func (m *menu) handleAddProductState() error {
	in, err := m.prompt.Ask(
		fmt.Sprintf("Product code or description (%d left):", m.pending),
		m.suggestProducts,
	)
	if err != nil {
		return err
	}

	p, err := m.catalog.Resolve(in)
	if err != nil {
		m.fail("Product not found: %s", err)
		return nil
	}

	if err := m.open.Add(p); err != nil {
		m.fail("%s", err)
		m.home()
		return nil
	}

	if err := query.Remember(p.Description, 1); err != nil {
		log.Warnf("remember lookup: %v", err)
	}

	m.pending--
	if m.pending > 0 {
		return nil
	}

	m.success("Order %02d has %s, total %s.",
		m.open.ID,
		util.Quantify(m.open.Len(), "product", "products"),
		money(m.open.Total()),
	)
	m.home()
	return nil
}

func (m *menu) handleFinalizeState() error {
	defer m.previousState()

	if err := m.book.Finalize(m.open); err != nil {
		m.fail("There is no open order to finalize.")
		return nil
	}

	m.success("Order finalized and stored.")
	m.println(Receipt(m.open, receiptWidth()))
	m.open = nil
	return nil
}

// requireOrders reports whether there are finalized orders to query.
func (m *menu) requireOrders() bool {
	if m.book.IsEmpty() {
		m.fail("There are no finalized orders.")
		m.previousState()
		return false
	}
	return true
}

func (m *menu) handleRecentState() error {
	if !m.requireOrders() {
		return nil
	}
	defer m.previousState()

	n, err := m.askQuantity("How many recent orders?")
	if err != nil || n.IsAbsent() {
		return err
	}

	recent, err := m.book.Recent(n.MustGet())
	if err != nil {
		return err
	}

	m.title("Products of the most recent orders")
	for o := range recent.All() {
		m.println(icon.Get(icon.Order), fmt.Sprintf("Order %02d of %s", o.ID, o.Date.Format(viper.GetString(key.OrdersDateFormat))))
		for _, p := range o.Products() {
			m.println(p.String())
		}
		m.println()
	}

	return nil
}

func (m *menu) handleAverageState() error {
	if !m.requireOrders() {
		return nil
	}
	defer m.previousState()

	n, err := m.askQuantity("Average over how many of the first orders?")
	if err != nil || n.IsAbsent() {
		return err
	}

	avg, err := m.book.AverageTotal(n.MustGet())
	if err != nil {
		return err
	}

	m.println(icon.Get(icon.Money), fmt.Sprintf("Average total of the first %d orders: %s", n.MustGet(), money(avg)))
	return nil
}

func (m *menu) handleAboveState() error {
	if !m.requireOrders() {
		return nil
	}
	defer m.previousState()

	n, err := m.askQuantity("Consider how many of the first orders?")
	if err != nil || n.IsAbsent() {
		return err
	}

	in, err := m.prompt.Ask("Minimum value (dot or comma):", nil)
	if err != nil {
		return err
	}

	limit, err := util.ParseDecimal(in)
	if err != nil {
		m.fail("Invalid value.")
		return nil
	}

	above, err := m.book.Above(n.MustGet(), limit)
	if err != nil {
		return err
	}

	m.title(fmt.Sprintf("Orders above %s (among the first %d)", catalog.FormatMoney(limit), n.MustGet()))
	m.printOrders(slices.Collect(above.All()))
	return nil
}

func (m *menu) handleWithProductState() error {
	if !m.requireOrders() {
		return nil
	}
	defer m.previousState()

	n, err := m.askQuantity("Consider how many of the first orders?")
	if err != nil || n.IsAbsent() {
		return err
	}

	description, err := m.prompt.Ask("Product description:", m.suggestProducts)
	if err != nil {
		return err
	}

	with, err := m.book.WithProduct(n.MustGet(), description)
	if err != nil {
		return err
	}

	m.title(fmt.Sprintf("Orders containing %q (among the first %d)", strings.TrimSpace(description), n.MustGet()))
	m.printOrders(slices.Collect(with.All()))
	return nil
}

func (m *menu) printOrders(orders []*order.Order) {
	if len(orders) == 0 {
		m.fail("No orders found.")
		return
	}

	width := receiptWidth()
	for _, o := range orders {
		m.println(Receipt(o, width))
		m.println()
	}
}

// askQuantity reads a positive count. An invalid answer prints a failure and yields None.
func (m *menu) askQuantity(message string) (mo.Option[int], error) {
	in, err := m.prompt.Ask(message, nil)
	if err != nil {
		return mo.None[int](), err
	}

	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || n <= 0 {
		m.fail("Invalid quantity.")
		return mo.None[int](), nil
	}

	return mo.Some(n), nil
}

// suggestProducts completes product descriptions from past lookups and the catalog.
func (m *menu) suggestProducts(toComplete string) []string {
	suggestions := query.SuggestMany(toComplete)

	if viper.GetBool(key.SearchFuzzy) {
		for _, p := range m.catalog.Search(toComplete) {
			suggestions = append(suggestions, p.Description)
		}
	}

	return lo.UniqBy(suggestions, strings.ToLower)
}
