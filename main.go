// Package main is the entry point for storefront.
package main

import (
	"github.com/samber/lo"
	"github.com/storefront-cli/storefront/cmd"
	"github.com/storefront-cli/storefront/config"
	"github.com/storefront-cli/storefront/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
