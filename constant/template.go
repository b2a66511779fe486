// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Catalog product kinds, as written in the first column of a catalog file.
const (
	KindNonPerishable = 1
	KindPerishable    = 2
)

// CatalogTemplate is a Go text/template for scaffolding a new catalog file.
// The first line holds the product count; every following line is
// kind;description;cost;margin[;expiry].
const CatalogTemplate = `{{ len .Products }}
{{ range .Products }}{{ .Kind }};{{ .Description }};{{ printf "%.2f" .Cost }};{{ printf "%.2f" .Margin }}{{ if .Expiry }};{{ .Expiry }}{{ end }}
{{ end }}`
