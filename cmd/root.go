// Package cmd implements the command-line interface for storefront.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storefront-cli/storefront/catalog"
	"github.com/storefront-cli/storefront/color"
	"github.com/storefront-cli/storefront/constant"
	"github.com/storefront-cli/storefront/icon"
	"github.com/storefront-cli/storefront/key"
	"github.com/storefront-cli/storefront/log"
	"github.com/storefront-cli/storefront/menu"
	"github.com/storefront-cli/storefront/style"
	"github.com/storefront-cli/storefront/util"
	"github.com/storefront-cli/storefront/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("catalog", "C", "", "Path of the product catalog file")
	lo.Must0(viper.BindPFlag(key.CatalogPath, rootCmd.PersistentFlags().Lookup("catalog")))

	// Leftovers from previous sessions.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd opens the interactive store menu.
var rootCmd = &cobra.Command{
	Use:   constant.Storefront,
	Short: "A console storefront for browsing a product catalog and taking orders",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiGreen).Render("    - A console storefront for browsing a product catalog and taking orders"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		c, err := catalog.Load(catalog.Path())
		handleErr(err)

		handleErr(menu.Run(c, &menu.Options{}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
