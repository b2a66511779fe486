package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/color"
	"github.com/storefront-cli/storefront/constant"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/icon"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/menu"
	"github.com/storefront-cli/storefront/open"
	"github.com/storefront-cli/storefront/query"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/tui"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// catalogCmd groups commands that inspect and scaffold the product catalog.
var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "Inspect and scaffold the product catalog",
	Aliases: []string{"products"},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	catalogListCmd.SetOut(os.Stdout)
}

// catalogListCmd prints every product with its sale price.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every product of the catalog with its sale price",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := catalog.Load(catalog.Path())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(c.All()))
			return
		}

		cmd.Println(menu.ProductTable(c.All()))
	},
}

func init() {
	catalogCmd.AddCommand(catalogFindCmd)
	catalogFindCmd.SetOut(os.Stdout)
}

// catalogFindCmd searches products by code or fuzzy description.
var catalogFindCmd = &cobra.Command{
	Use:   "find [code or description]",
	Short: "Find products by code or by a fuzzy description",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		c, err := catalog.Load(catalog.Path())
		handleErr(err)

		ref := args[0]
		if p, err := c.Resolve(ref); err == nil {
			handleErr(query.Remember(p.Description, 1))
			cmd.Println(p)
			return
		}

		found := c.Search(ref)
		if len(found) == 0 {
			_, err := c.Resolve(ref)
			handleErr(err)
		}

		cmd.Println(menu.ProductTable(found))
	},
}

func init() {
	catalogCmd.AddCommand(catalogInitCmd)
	catalogInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing catalog file")
}

type catalogEntry struct {
	Kind        int
	Description string
	Cost        float64
	Margin      float64
	Expiry      string
}

var sampleCatalog = []catalogEntry{
	{constant.KindNonPerishable, "Guardanapos", 2.50, 0.10, ""},
	{constant.KindPerishable, "Iogurte", 5.00, 0.60, "29/08/2025"},
	{constant.KindNonPerishable, "Detergente", 3.00, 0.50, ""},
	{constant.KindPerishable, "Queijo Minas", 20.00, 0.25, "10/09/2025"},
}

// catalogInitCmd writes a sample catalog to the configured location.
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample catalog to the configured catalog path",
	Run: func(cmd *cobra.Command, args []string) {
		path := catalog.Path()

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("catalog %s already exists, use --force to overwrite it", path))
		}

		t, err := template.New("catalog").Parse(constant.CatalogTemplate)
		handleErr(err)

		var buf bytes.Buffer
		handleErr(t.Execute(&buf, struct{ Products []catalogEntry }{sampleCatalog}))

		handleErr(filesystem.WriteAtomic(path, buf.Bytes(), 0644))
		log.Infof("catalog scaffolded at %s", path)
		fmt.Printf(
			"%s wrote catalog to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			path,
		)
	},
}

func init() {
	catalogCmd.AddCommand(catalogEditCmd)
	catalogEditCmd.Flags().StringP("with", "w", os.Getenv("EDITOR"), "Application used to open the catalog")
}

// catalogEditCmd opens the catalog file for editing.
var catalogEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the catalog file in an editor",
	Run: func(cmd *cobra.Command, args []string) {
		path := catalog.Path()

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if !exists {
			handleErr(fmt.Errorf("catalog %s does not exist, run %s catalog init first", path, constant.Storefront))
		}

		handleErr(open.FileWith(path, lo.Must(cmd.Flags().GetString("with"))))
	},
}

func init() {
	catalogCmd.AddCommand(catalogBrowseCmd)
	catalogBrowseCmd.SetOut(os.Stdout)
}

// catalogBrowseCmd opens the full-screen catalog browser.
var catalogBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in a full-screen view with live filtering",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := catalog.Load(catalog.Path())
		handleErr(err)

		selected, err := tui.Run(c)
		handleErr(err)

		if p, ok := selected.Get(); ok {
			handleErr(query.Remember(p.Description, 1))
			cmd.Println(p)
		}
	},
}
