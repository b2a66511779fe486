package cmd

import (
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/filesystem"
	"github.com/storefront-cli/storefront/query"
	"github.com/storefront-cli/storefront/report"
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("script", "s", "", "JSON or YAML file listing the orders to finalize")
	lo.Must0(reportCmd.MarkFlagRequired("script"))
	lo.Must0(reportCmd.MarkFlagFilename("script", "json", "yaml", "yml"))

	reportCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	reportCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	reportCmd.Flags().IntP("recent", "r", 0, "List the products of the N most recent orders")
	reportCmd.Flags().IntP("average", "a", 0, "Average total of the first N orders")
	reportCmd.Flags().Float64P("above", "x", 0, "First orders whose total is above this value")
	reportCmd.Flags().StringP("with", "w", "", "First orders containing this product")
	reportCmd.Flags().IntP("first", "n", 0, "How many of the first orders --above and --with consider")

	reportCmd.MarkFlagsMutuallyExclusive("recent", "average", "above", "with")
	reportCmd.MarkFlagsOneRequired("recent", "average", "above", "with")

	lo.Must0(reportCmd.RegisterFlagCompletionFunc("with", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// reportCmd finalizes scripted orders and answers one query over them.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Answer an order query over scripted orders without the interactive menu",
	Long: `Finalize the orders listed in a script and answer one query over them.

Scripts are JSON or YAML, picked by file extension:

  orders:
    - payment: cash          # or installments, 1, 2
      date: 25/08/2025       # optional, defaults to today
      products: [Iogurte, 1] # descriptions or catalog codes

Queries:
  --recent N              products of the N most recent orders
  --average N             average total of the first N orders
  --above X --first N     first N orders with a total above X
  --with NAME --first N   first N orders containing the product NAME`,
	Example: "storefront report --script orders.yaml --above 20 --first 5 --json",
	PreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("above") || cmd.Flags().Changed("with") {
			lo.Must0(cmd.MarkFlagRequired("first"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		c, err := catalog.Load(catalog.Path())
		handleErr(err)

		script, err := report.ReadScript(lo.Must(cmd.Flags().GetString("script")))
		handleErr(err)

		book, err := script.Book(c, time.Now())
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer f.Close()
			writer = f
		}

		options := &report.Options{
			Out:     writer,
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Recent:  intFlag(cmd, "recent"),
			Average: intFlag(cmd, "average"),
			First:   lo.Must(cmd.Flags().GetInt("first")),
		}

		if cmd.Flags().Changed("above") {
			options.Above = mo.Some(lo.Must(cmd.Flags().GetFloat64("above")))
		}
		if cmd.Flags().Changed("with") {
			options.With = mo.Some(lo.Must(cmd.Flags().GetString("with")))
		}

		handleErr(report.Run(book, options))
	},
}

func intFlag(cmd *cobra.Command, name string) mo.Option[int] {
	if !cmd.Flags().Changed(name) {
		return mo.None[int]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetInt(name)))
}

func init() {
	reportCmd.AddCommand(reportSchemaCmd)
}

// reportSchemaCmd prints the JSON schema of the report output.
var reportSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured report output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "order", "product", "output":
				return "report." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&report.Output{})))
	},
}
