// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Catalog Source - these keys locate and parse the product catalog.
const (
	CatalogPath = "catalog.path"
)

// Ordering Rules - these keys govern order composition and pricing.
const (
	OrdersMaxProducts  = "orders.max_products"
	OrdersCashDiscount = "orders.cash_discount"
	OrdersCurrency     = "orders.currency"
	OrdersDateFormat   = "orders.date_format"
)

// Search Interaction - these keys define how products are looked up.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchFuzzy                = "search.fuzzy"
)

// Interactive Menu - these keys configure the console menu loop.
const (
	MenuClearScreen = "menu.clear_screen"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
